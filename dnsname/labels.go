// Copyright (c) 2025 The qptrie Authors
// SPDX-License-Identifier: MIT

// Package dnsname parses, canonicalizes, compares and owns DNS names
// in the representations a qp-trie needs: a zero-copy index over a
// borrowed wire buffer ([WireLabels]), a decompressed lower-cased
// scratch copy ([ScratchName]), and a single-allocation heap-owned
// form ([HeapName]). All three satisfy [DnsLabels], so canonical
// comparison and text rendering are written once and apply to every
// representation equally.
package dnsname

import (
	"fmt"
	"strings"
)

// MaxName is the maximum length of a DNS name in uncompressed wire
// octets, including the trailing root label's length byte.
const MaxName = 255

// MaxLLen is the maximum length of a single DNS label.
const MaxLLen = 0x3F

// MaxLabs is the maximum number of labels in a DNS name: one octet
// for the root zone, plus as many two-octet (length-byte + content)
// labels as fit in what's left, plus the root itself.
const MaxLabs = (MaxName-1)/2 + 1

// DnsLabels is an index over a DNS name's labels: how many there are,
// how long the uncompressed name is, and how to fetch the text of any
// one of them. Every name representation in this package implements
// it, which is what lets [Compare] and [Text] work across all of
// them uniformly.
type DnsLabels interface {
	// Labs returns the number of labels, including the root.
	Labs() int
	// Nlen returns the length of the name in uncompressed wire
	// octets.
	Nlen() int
	// Label returns label lab's text (without its length byte),
	// counting from 0 on the left. ok is false if lab is out of
	// range.
	Label(lab int) (text []byte, ok bool)
}

// RLabel returns a label's text counted from the right, where 0 is
// the root zone. It's defined once here, in terms of Labs/Label, so
// every DnsLabels implementation gets identical rlabel semantics —
// which is also what keeps cross-representation ordering consistent,
// since ordering and encoding both walk names via RLabel.
func RLabel(n DnsLabels, lab int) (text []byte, ok bool) {
	root := n.Labs() - 1
	if root < lab {
		return nil, false
	}
	return n.Label(root - lab)
}

// DnsName is a DnsLabels backed by a contiguous, uncompressed,
// lower-cased byte run: both [ScratchName] and [HeapName] implement
// it. [WireLabels] does not, because its labels live scattered across
// a borrowed (possibly compressed) wire buffer, not a single
// contiguous run.
type DnsName interface {
	DnsLabels
	// Name returns the whole uncompressed, lower-cased name.
	Name() []byte
	// LPos returns the byte offset of each label within Name.
	LPos() []byte
}

// LabelAt implements DnsLabels.Label for any DnsName, given its Name
// and LPos. Every DnsName implementation delegates to this rather
// than repeating the offset arithmetic.
func LabelAt(name, lpos []byte, lab int) (text []byte, ok bool) {
	if lab < 0 || lab >= len(lpos) {
		return nil, false
	}
	pos := int(lpos[lab])
	if pos >= len(name) {
		return nil, false
	}
	llen := int(name[pos])
	if pos+1+llen > len(name) {
		return nil, false
	}
	return name[pos+1 : pos+1+llen], true
}

// NameEqual reports whether two DnsName values are the same name, by
// direct byte comparison of their canonical (already lower-cased,
// uncompressed) Name(). This is the fast path available only to
// DnsName; compare [Compare] for the general cross-representation
// path that also covers [WireLabels].
func NameEqual(a, b DnsName) bool {
	an, bn := a.Name(), b.Name()
	if len(an) != len(bn) {
		return false
	}
	for i := range an {
		if an[i] != bn[i] {
			return false
		}
	}
	return true
}

func asciiLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

func compareLabels(a, b []byte) int {
	for i := 0; ; i++ {
		aDone := i >= len(a)
		bDone := i >= len(b)
		if aDone && bDone {
			return 0
		}
		if aDone {
			return -1
		}
		if bDone {
			return 1
		}
		ac, bc := asciiLower(a[i]), asciiLower(b[i])
		if ac != bc {
			if ac < bc {
				return -1
			}
			return 1
		}
	}
}

// Compare orders two names by RFC 4034 canonical (reversed-label)
// order: compare RLabel(0), RLabel(1), ... with each label compared
// byte-by-byte, ASCII case-folded. It's defined over the DnsLabels
// interface so it agrees across every representation — WireLabels,
// ScratchName and HeapName alike — for identically-sourced names.
func Compare(a, b DnsLabels) int {
	for lab := 0; ; lab++ {
		al, aok := RLabel(a, lab)
		bl, bok := RLabel(b, lab)
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		if c := compareLabels(al, bl); c != 0 {
			return c
		}
	}
}

// Equal reports whether a and b are the same name under canonical
// ordering (Compare(a, b) == 0).
func Equal(a, b DnsLabels) bool {
	return Compare(a, b) == 0
}

// unescapedByte reports whether b can appear in text form without a
// backslash escape. The set is exactly `* - _ 0-9 A-Z a-z`.
func unescapedByte(b byte) bool {
	switch {
	case b == '*' || b == '-' || b == '_':
		return true
	case b >= '0' && b <= '9':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	default:
		return false
	}
}

// Text renders n in RFC 1035 zone-file text form: each non-root label
// followed by `.` (the root name alone renders as "."), each byte
// outside `* - _ 0-9 A-Z a-z` either backslash-escaped literally
// (printable ASCII) or as a `\DDD` decimal escape (everything else).
func Text(n DnsLabels) string {
	var b strings.Builder
	labs := n.Labs()
	if labs == 1 {
		return "."
	}
	for lab := 0; lab+1 < labs; lab++ {
		label, ok := n.Label(lab)
		if !ok {
			break
		}
		for _, ch := range label {
			switch {
			case unescapedByte(ch):
				b.WriteByte(ch)
			case ch >= '!' && ch <= '~':
				b.WriteByte('\\')
				b.WriteByte(ch)
			default:
				fmt.Fprintf(&b, "\\%03d", ch)
			}
		}
		b.WriteByte('.')
	}
	return b.String()
}
