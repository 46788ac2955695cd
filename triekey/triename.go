// Copyright (c) 2025 The qptrie Authors
// SPDX-License-Identifier: MIT

package triekey

import (
	"github.com/fanf2/qptrie/dnsname"
	"github.com/fanf2/qptrie/internal/scratchpad"
	"github.com/fanf2/qptrie/qerr"
)

// maxTrieName bounds a TrieName's encoded length: each of the up to
// MaxName-1 non-root octets can need two key bytes (escaped), plus one
// ShiftNoByte separator per label, plus the final double-NOBYTE
// terminator. Like the original's own estimate, this is deliberately
// generous rather than exact.
const maxTrieName = dnsname.MaxName*2 + 2

// maxPName bounds the synthetic wire-format buffer Decode stages its
// output in: a chain of labels, each one immediately followed by a
// 2-byte compression pointer back to the previous label, which is
// looser than a real wire name's layout and so needs more room.
const maxPName = dnsname.MaxName*2 + 16

// TrieName is a DNS name encoded as a qp-trie key: the byte string a
// branch node's traversal actually walks. Labels are encoded
// root-first (the reverse of wire/text order) so that names sharing
// a suffix share a trie key prefix, and the byte-wise ordering of two
// TrieNames agrees with [dnsname.Compare] on the names they came
// from. Building and walking the trie itself is out of scope; this
// type only does the name <-> key conversion.
type TrieName struct {
	key scratchpad.Pad[byte]
}

// NewTrieName returns a TrieName ready for Encode.
func NewTrieName() TrieName {
	return TrieName{key: scratchpad.New[byte](maxTrieName)}
}

// Clear empties k for reuse.
func (k *TrieName) Clear() { k.key.Clear() }

// AsSlice returns the encoded key bytes.
func (k *TrieName) AsSlice() []byte { return k.key.AsSlice() }

// Encode overwrites k with name's trie key encoding. The root label is
// skipped (every name the trie stores shares it), each remaining
// label is emitted right-to-left via [dnsname.RLabel] with its bytes
// translated through [ByteToBits], and each label ends with a
// ShiftNoByte separator; a second ShiftNoByte terminates the whole
// key.
func (k *TrieName) Encode(name dnsname.DnsLabels) error {
	k.Clear()
	for lab := 1; lab < name.Labs(); lab++ {
		label, ok := dnsname.RLabel(name, lab)
		if !ok {
			return qerr.WithInt(qerr.BugTrieName, lab)
		}
		for _, c := range label {
			bits := ByteToBits[c]
			if err := k.key.Push(bits[0]); err != nil {
				return err
			}
			if bits[1] > 0 {
				if err := k.key.Push(bits[1]); err != nil {
					return err
				}
			}
		}
		if err := k.key.Push(ShiftNoByte); err != nil {
			return err
		}
	}
	return k.key.Push(ShiftNoByte)
}

// Decode reverses Encode, reconstructing the name the key was built
// from. It stages a synthetic wire-format buffer where each decoded
// label is immediately followed by a compression pointer back to the
// previously decoded label (or the root, for the first one), then
// hands that buffer to the ordinary wire-name parser — so Decode
// reuses [dnsname.WireLabels] rather than building a name byte-by-byte
// itself.
func (k *TrieName) Decode() (dnsname.HeapName, error) {
	var pname [maxPName]byte
	ppos := 0 // previously decoded label, starts at the root
	lpos := 1 // this label's length-byte position
	pos := lpos + 1

	key := k.key.AsSlice()
	i := 0
	for i < len(key) {
		one := int(key[i])
		i++

		if one == ShiftNoByte {
			llen := pos - lpos - 1
			if llen == 0 {
				break
			}
			if pos+1 >= len(pname) {
				return dnsname.HeapName{}, qerr.New(qerr.BugTrieName)
			}
			pname[lpos] = byte(llen)
			pname[pos] = 0xC0 | byte(ppos>>8)
			pname[pos+1] = byte(ppos & 0xFF)
			ppos = lpos
			lpos = pos + 2
			pos = lpos + 1
			continue
		}

		if one < 0 || one >= len(BitsToByte) || pos >= len(pname) {
			return dnsname.HeapName{}, qerr.New(qerr.BugTrieName)
		}
		if BitsToByte[one][0] != 0 {
			pname[pos] = BitsToByte[one][0]
			pos++
			continue
		}
		if i >= len(key) {
			return dnsname.HeapName{}, qerr.New(qerr.BugTrieName)
		}
		two := int(key[i])
		i++
		if two < 0 || two >= len(BitsToByte[one]) {
			return dnsname.HeapName{}, qerr.New(qerr.BugTrieName)
		}
		pname[pos] = BitsToByte[one][two]
		pos++
	}

	w := dnsname.NewWireLabels[uint16]()
	if _, err := w.FromWire(pname[:], ppos); err != nil {
		return dnsname.HeapName{}, err
	}
	return dnsname.HeapNameFromWire(&w)
}
