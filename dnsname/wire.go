// Copyright (c) 2025 The qptrie Authors
// SPDX-License-Identifier: MIT

package dnsname

import (
	"github.com/fanf2/qptrie/internal/scratchpad"
	"github.com/fanf2/qptrie/qerr"
)

// position is the set of integer types WireLabels can pack label
// offsets into. P=uint8 is enough for names that live entirely within
// the first 256 bytes of a message (the common case); P=uint16 covers
// the full 16-bit DNS message address space at twice the per-label
// storage cost.
type position interface {
	~uint8 | ~uint16
}

// WireLabels is a zero-copy index into a borrowed wire buffer: it
// remembers where each label starts and reads its content straight
// out of the original bytes on demand, rather than copying. Because a
// label's bytes may sit anywhere in the buffer's compression chain,
// WireLabels cannot expose a contiguous Name/LPos pair and so does
// not implement [DnsName] — only [DnsLabels].
//
// The zero value is not ready to use; call [NewWireLabels].
type WireLabels[P position] struct {
	lpos scratchpad.Pad[P]
	nlen int
	wire []byte
}

// NewWireLabels returns a WireLabels ready for FromWire.
func NewWireLabels[P position]() WireLabels[P] {
	return WireLabels[P]{lpos: scratchpad.New[P](MaxLabs)}
}

// Clear empties w so it can be reused for another FromWire call
// against a (possibly different) wire buffer.
func (w *WireLabels[P]) Clear() {
	w.lpos.Clear()
	w.nlen = 0
	w.wire = nil
}

// Labs implements [DnsLabels].
func (w *WireLabels[P]) Labs() int { return w.lpos.Len() }

// Nlen implements [DnsLabels].
func (w *WireLabels[P]) Nlen() int { return w.nlen }

// Label implements [DnsLabels] by reading straight out of the
// borrowed wire buffer at the recorded offset.
func (w *WireLabels[P]) Label(lab int) (text []byte, ok bool) {
	positions := w.lpos.AsSlice()
	if lab < 0 || lab >= len(positions) {
		return nil, false
	}
	pos := int(positions[lab])
	if pos >= len(w.wire) {
		return nil, false
	}
	llen := int(w.wire[pos])
	if pos+1+llen > len(w.wire) {
		return nil, false
	}
	return w.wire[pos+1 : pos+1+llen], true
}

// fitsPosition reports whether pos is representable in P, so a name
// whose labels range further than P can address is rejected with
// WideWire instead of silently truncating an offset.
func fitsPosition[P position](pos int) bool {
	var zero P
	max := uint64(^zero)
	return pos >= 0 && uint64(pos) <= max
}

func (w *WireLabels[P]) emitLabel(d dodgy, pos int, llen byte) error {
	if w.lpos.Len()+1 > MaxLabs {
		return qerr.New(qerr.NameLabels)
	}
	if w.nlen+1+int(llen) > MaxName {
		return qerr.New(qerr.NameLength)
	}
	if !fitsPosition[P](pos) {
		return qerr.WithInt(qerr.WideWire, pos)
	}
	if err := w.lpos.Push(P(pos)); err != nil {
		return err
	}
	w.nlen += 1 + int(llen)
	return nil
}

// FromWire parses the name starting at pos in wire, following
// compression pointers as needed, and returns the end offset (one
// past the root label, measured from the start of wire — not
// following any pointer). w borrows wire for the lifetime of every
// subsequent Label call; the caller must not mutate it meanwhile.
func (w *WireLabels[P]) FromWire(wire []byte, pos int) (end int, err error) {
	w.Clear()
	w.wire = wire
	end, err = dodgyFromWire(w, dodgy{bytes: wire}, pos)
	if err != nil {
		w.Clear()
		return 0, err
	}
	return end, nil
}

// String renders w in zone-file text form.
func (w *WireLabels[P]) String() string { return Text(w) }

// Compare orders w against any other DnsLabels in canonical order.
func (w *WireLabels[P]) Compare(other DnsLabels) int { return Compare(w, other) }

// Equal reports whether w and other are the same name under
// canonical ordering.
func (w *WireLabels[P]) Equal(other DnsLabels) bool { return Equal(w, other) }
