// Copyright (c) 2025 The qptrie Authors
// SPDX-License-Identifier: MIT

package dnsname

import "github.com/fanf2/qptrie/qerr"

// HeapName is an immutable DNS name in a single allocation, laid out
// as [labs byte][lpos bytes, labs of them][name bytes, nlen of them].
// Go's garbage collector reclaims that one backing array exactly like
// any other slice once the last HeapName referencing it is gone — no
// manual Drop or raw-pointer bookkeeping is needed the way the
// original's single-malloc layout required.
//
// The last entry of lpos is always nlen-1 (the root label's offset),
// which is what lets Nlen be recovered from mem itself instead of
// being stored as a separate field.
type HeapName struct {
	mem []byte
}

// Labs implements [DnsLabels].
func (h HeapName) Labs() int { return int(h.mem[0]) }

// Nlen implements [DnsLabels].
func (h HeapName) Nlen() int { return int(h.mem[h.Labs()]) + 1 }

// LPos implements [DnsName].
func (h HeapName) LPos() []byte {
	labs := h.Labs()
	return h.mem[1 : 1+labs]
}

// Name implements [DnsName].
func (h HeapName) Name() []byte {
	labs := h.Labs()
	start := 1 + labs
	return h.mem[start : start+h.Nlen()]
}

// Label implements [DnsLabels].
func (h HeapName) Label(lab int) ([]byte, bool) {
	return LabelAt(h.Name(), h.LPos(), lab)
}

// String renders h in zone-file text form.
func (h HeapName) String() string { return Text(h) }

// Compare orders h against any other DnsLabels in canonical order.
func (h HeapName) Compare(other DnsLabels) int { return Compare(h, other) }

// Equal reports whether h and other are the same name under canonical
// ordering.
func (h HeapName) Equal(other DnsLabels) bool { return Equal(h, other) }

// NameEqual reports whether h and other are byte-identical, the fast
// path available between two DnsName values.
func (h HeapName) NameEqual(other DnsName) bool { return NameEqual(h, other) }

// HeapNameFromScratch copies n into a single freshly-allocated
// HeapName. The two share no storage afterwards; n may be Clear'd and
// reused immediately.
func HeapNameFromScratch(n *ScratchName) HeapName {
	labs := n.Labs()
	lpos := n.LPos()
	name := n.Name()

	mem := make([]byte, 1+labs+len(name))
	mem[0] = byte(labs)
	copy(mem[1:1+labs], lpos)
	copy(mem[1+labs:], name)
	return HeapName{mem: mem}
}

// HeapNameFromWire copies and lower-cases w (which may still hold
// compression-pointer-scattered labels borrowed from a wire buffer)
// into a single freshly-allocated, contiguous HeapName.
func HeapNameFromWire[P position](w *WireLabels[P]) (HeapName, error) {
	labs := w.Labs()
	mem := make([]byte, 1+labs+w.Nlen())
	mem[0] = byte(labs)

	wpos := byte(0)
	npos := 1 + labs
	for lab := 0; lab < labs; lab++ {
		label, ok := w.Label(lab)
		if !ok {
			return HeapName{}, qerr.WithInt(qerr.BugWirePos, lab)
		}
		llen := byte(len(label))
		mem[1+lab] = wpos
		wpos += 1 + llen

		mem[npos] = llen
		npos++
		for _, ch := range label {
			mem[npos] = asciiLower(ch)
			npos++
		}
	}
	return HeapName{mem: mem}, nil
}

// HeapNameFromWireBuf parses wire at pos into a HeapName in one call,
// without the caller needing a scratch WireLabels of its own.
func HeapNameFromWireBuf(wire []byte, pos int) (HeapName, int, error) {
	w := NewWireLabels[uint16]()
	end, err := w.FromWire(wire, pos)
	if err != nil {
		return HeapName{}, 0, err
	}
	h, err := HeapNameFromWire(&w)
	if err != nil {
		return HeapName{}, 0, err
	}
	return h, end, nil
}

// HeapNameFromText parses text as a whole zone-file name: every byte
// of text must be consumed, or NameTrailing is returned.
func HeapNameFromText(text []byte) (HeapName, error) {
	n := NewScratchName()
	consumed, err := n.FromText(text)
	if err != nil {
		return HeapName{}, err
	}
	if consumed != len(text) {
		return HeapName{}, qerr.New(qerr.NameTrailing)
	}
	return HeapNameFromScratch(&n), nil
}
