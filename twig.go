// Copyright (c) 2025 The qptrie Authors
// SPDX-License-Identifier: MIT

package qptrie

import "github.com/fanf2/qptrie/dnsname"

// twigKind discriminates a Twig's two cases. The original packed this
// tag into a single low bit of a machine word shared with a branch's
// bitmap and offset, so that a node cost exactly two words; Go's
// garbage collector and the safety rules around unsafe.Pointer make
// that packing impractical to reproduce faithfully, so Twig is an
// ordinary tagged struct instead. It costs more per node, but every
// field is reachable and typed, which is the trade this codebase
// otherwise always takes.
type twigKind uint8

const (
	leafTwig twigKind = iota
	branchTwig
)

// Twig is a qp-trie node: either a Leaf holding one stored name and
// its value, or a Branch holding the next slice of trie-key bits to
// test and the child Twigs for each bit value present (see
// [triekey.ByteToBits] for how a name's bytes become those bits).
//
// Building or walking a trie out of Twigs — insert, lookup, delete,
// iteration in trie order — is deliberately not implemented here;
// this type only fixes the shape a future traversal would operate on.
type Twig[T any] struct {
	kind   twigKind
	offset int
	twigs  BmpVec[Twig[T]]
	key    dnsname.HeapName
	val    *T
}

// NewLeafTwig returns a leaf Twig holding key and a pointer to val.
func NewLeafTwig[T any](key dnsname.HeapName, val *T) Twig[T] {
	return Twig[T]{kind: leafTwig, key: key, val: val}
}

// NewBranchTwig returns a branch Twig testing the trie-key bits
// starting at offset, with twigs as its children.
func NewBranchTwig[T any](offset int, twigs BmpVec[Twig[T]]) Twig[T] {
	return Twig[T]{kind: branchTwig, offset: offset, twigs: twigs}
}

// IsLeaf reports whether t is a leaf.
func (t Twig[T]) IsLeaf() bool { return t.kind == leafTwig }

// IsBranch reports whether t is a branch.
func (t Twig[T]) IsBranch() bool { return t.kind == branchTwig }

// Leaf returns t's key and value if t is a leaf.
func (t Twig[T]) Leaf() (key dnsname.HeapName, val *T, ok bool) {
	if t.kind != leafTwig {
		return dnsname.HeapName{}, nil, false
	}
	return t.key, t.val, true
}

// Branch returns t's bit offset and children if t is a branch.
func (t Twig[T]) Branch() (offset int, twigs BmpVec[Twig[T]], ok bool) {
	if t.kind != branchTwig {
		return 0, BmpVec[Twig[T]]{}, false
	}
	return t.offset, t.twigs, true
}
