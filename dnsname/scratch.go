// Copyright (c) 2025 The qptrie Authors
// SPDX-License-Identifier: MIT

package dnsname

import (
	"errors"

	"github.com/fanf2/qptrie/internal/scratchpad"
	"github.com/fanf2/qptrie/qerr"
)

// ScratchName is a decompressed, lower-cased, self-contained copy of
// a DNS name: every label's bytes and every label's start offset live
// in two scratch buffers owned by ScratchName itself, sized to the
// protocol's own limits (MaxName, MaxLabs) so no allocation happens
// after construction and no bound can ever be exceeded without an
// error. It is meant to be reused across many FromWire/FromText calls
// — Clear resets it in place.
type ScratchName struct {
	name scratchpad.Pad[byte]
	lpos scratchpad.Pad[byte]
}

// NewScratchName returns a ScratchName ready for FromWire or FromText.
func NewScratchName() ScratchName {
	return ScratchName{
		name: scratchpad.New[byte](MaxName),
		lpos: scratchpad.New[byte](MaxLabs),
	}
}

// Clear empties n for reuse.
func (n *ScratchName) Clear() {
	n.name.Clear()
	n.lpos.Clear()
}

// Labs implements [DnsLabels].
func (n *ScratchName) Labs() int { return n.lpos.Len() }

// Nlen implements [DnsLabels].
func (n *ScratchName) Nlen() int { return n.name.Len() }

// Name implements [DnsName].
func (n *ScratchName) Name() []byte { return n.name.AsSlice() }

// LPos implements [DnsName].
func (n *ScratchName) LPos() []byte { return n.lpos.AsSlice() }

// Label implements [DnsLabels].
func (n *ScratchName) Label(lab int) ([]byte, bool) {
	return LabelAt(n.name.AsSlice(), n.lpos.AsSlice(), lab)
}

// String renders n in zone-file text form.
func (n *ScratchName) String() string { return Text(n) }

// Compare orders n against any other DnsLabels in canonical order.
func (n *ScratchName) Compare(other DnsLabels) int { return Compare(n, other) }

// Equal reports whether n and other are the same name under canonical
// ordering.
func (n *ScratchName) Equal(other DnsLabels) bool { return Equal(n, other) }

// addLabel appends one label's lower-cased bytes, reading llen bytes
// from d starting at rpos, plus the label's length byte, recording
// its start offset in lpos. The budget checks (name length, label
// count) happen in its caller, emitLabel, before this is reached —
// by the time addLabel runs the push is expected to succeed, and a
// scratchpad overflow here means the two checks disagree with the pad
// capacities, a programmer error.
func (n *ScratchName) addLabel(d dodgy, rpos int, llen byte) error {
	wpos := n.name.Len()
	if wpos > 255 {
		return qerr.WithInt(qerr.BugWirePos, wpos)
	}
	if err := n.lpos.Push(byte(wpos)); err != nil {
		return err
	}
	if err := n.name.Push(llen); err != nil {
		return err
	}
	for i := 0; i < int(llen); i++ {
		b, err := d.get(rpos + i)
		if err != nil {
			return err
		}
		if err := n.name.Push(asciiLower(b)); err != nil {
			return err
		}
	}
	return nil
}

func (n *ScratchName) emitLabel(d dodgy, pos int, llen byte) error {
	if n.lpos.Len()+1 > MaxLabs {
		return qerr.New(qerr.NameLabels)
	}
	if n.name.Len()+1+int(llen) > MaxName {
		return qerr.New(qerr.NameLength)
	}
	return n.addLabel(d, pos+1, llen)
}

// FromWire parses the name starting at pos in wire, following
// compression pointers as needed, copying and lower-casing every
// label into n's own buffers. It returns the end offset, exactly as
// [WireLabels.FromWire] does.
func (n *ScratchName) FromWire(wire []byte, pos int) (end int, err error) {
	n.Clear()
	end, err = dodgyFromWire(n, dodgy{bytes: wire}, pos)
	if err != nil {
		n.Clear()
		return 0, err
	}
	return end, nil
}

// labelFromText reads one zone-file label from d starting at *pos,
// decoding `\DDD` decimal escapes and `\X` literal escapes, and
// advances *pos past what it consumed. It reports whether a label was
// produced: true if a `.` or a non-empty label was read, false at the
// end of input with nothing pending.
//
// On hitting a recognized terminator (whitespace, `;`, `(`, `)`) it
// rewinds *pos by one so the caller can see the terminator itself.
func labelFromText(label *scratchpad.Pad[byte], d dodgy, pos *int) (produced bool, err error) {
	label.Clear()
	for {
		b, err := d.get(*pos)
		if err != nil {
			return !label.IsEmpty(), nil
		}
		*pos++
		switch b {
		case '\\':
			nb, err := d.get(*pos)
			if err != nil {
				return false, err
			}
			if nb >= '0' && nb <= '9' {
				code, err := d.slice(*pos, 3)
				if err != nil {
					return false, err
				}
				val := 0
				valid := true
				for _, c := range code {
					if c < '0' || c > '9' {
						valid = false
						break
					}
					val = val*10 + int(c-'0')
				}
				if !valid || val > 255 {
					return false, qerr.WithInt(qerr.EscapeBad, val)
				}
				if err := label.Push(byte(val)); err != nil {
					return false, remapLabelOverflow(err)
				}
				*pos += 3
			} else {
				if err := label.Push(nb); err != nil {
					return false, remapLabelOverflow(err)
				}
				*pos++
			}
		case '"':
			return false, qerr.New(qerr.NameQuotes)
		case '\n', '\r', '\t', ' ', ';', '(', ')':
			*pos--
			return !label.IsEmpty(), nil
		case '.':
			return true, nil
		default:
			if err := label.Push(b); err != nil {
				return false, remapLabelOverflow(err)
			}
		}
	}
}

// remapLabelOverflow turns the scratchpad's generic overflow error
// into the more specific LabelLength: the label-building pad is sized
// to exactly MaxLLen, so overflowing it always means one label grew
// past what a DNS length byte can encode.
func remapLabelOverflow(err error) error {
	if errors.Is(err, qerr.New(qerr.ScratchOverflow)) {
		return qerr.New(qerr.LabelLength)
	}
	return err
}

// dodgyFromText runs the zone-file text parser: a sequence of labels
// separated by `.`, with at most one permitted empty label (the
// root), which may appear only as the sole label ("." alone) or as
// the terminating label of an otherwise non-empty name ("a.b." or,
// equivalently, the implicit root appended to "a.b"). Two empty
// labels, or an empty label anywhere but last, is a syntax error.
func (n *ScratchName) dodgyFromText(d dodgy) (end int, err error) {
	label := scratchpad.New[byte](MaxLLen)
	pos := 0
	roots := 0

	for {
		produced, err := labelFromText(&label, d, &pos)
		if err != nil {
			return 0, err
		}
		if !produced {
			break
		}
		llen := label.Len()
		if err := n.emitLabel(dodgy{bytes: label.AsSlice()}, -1, byte(llen)); err != nil {
			return 0, err
		}
		if llen == 0 {
			roots++
		}
	}

	if roots > 1 || (roots > 0 && n.Labs() > 1) || n.Labs() == 0 {
		return 0, qerr.New(qerr.NameSyntax)
	} else if roots == 0 {
		if err := n.emitLabel(dodgy{}, -1, 0); err != nil {
			return 0, err
		}
	}
	return pos, nil
}

// FromText parses text as a zone-file name (RFC 1035 §5.1 subset),
// copying and lower-casing every label into n's own buffers. It
// returns the number of text bytes consumed; callers that require the
// whole input to be one name should check that against len(text) and
// report NameTrailing otherwise.
func (n *ScratchName) FromText(text []byte) (consumed int, err error) {
	n.Clear()
	consumed, err = n.dodgyFromText(dodgy{bytes: text})
	if err != nil {
		n.Clear()
		return 0, err
	}
	return consumed, nil
}
