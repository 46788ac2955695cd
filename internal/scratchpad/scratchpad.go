// Copyright (c) 2025 The qptrie Authors
// SPDX-License-Identifier: MIT

// Package scratchpad implements a fixed-capacity, append-only buffer:
// a slice pre-allocated once at its capacity and never grown. It is
// the storage underneath every DNS name representation and the
// trie-key codec, each of which is sized to the protocol's own limits
// (255 octets, 128 labels) so overflow can only mean a bug, not a
// legitimately large name.
//
// Go has no const-generic array lengths (no `[N]T` with N a type
// parameter), so unlike the Rust original this cannot be a literal
// inline array monomorphized per N. Instead New preallocates a slice
// at exactly the requested capacity and Push/Append never let it grow
// past that — the same "no reallocation, overflow is a typed error"
// contract, backed by one make() per pad instead of zero.
package scratchpad

import "github.com/fanf2/qptrie/qerr"

// Pad is an append-only buffer of fixed capacity. The zero value is
// not usable; construct with [New].
type Pad[T any] struct {
	buf []T
}

// New creates a Pad with capacity cap, ready to Push/Append into.
func New[T any](capacity int) Pad[T] {
	return Pad[T]{buf: make([]T, 0, capacity)}
}

// Clear resets the pad to empty without releasing its backing array.
func (p *Pad[T]) Clear() {
	p.buf = p.buf[:0]
}

// IsEmpty reports whether the pad holds zero elements.
func (p *Pad[T]) IsEmpty() bool {
	return len(p.buf) == 0
}

// Len returns the number of initialized elements.
func (p *Pad[T]) Len() int {
	return len(p.buf)
}

// AsSlice returns a slice over the initialized prefix. The slice is
// only valid until the next Push/Append/Clear.
func (p *Pad[T]) AsSlice() []T {
	return p.buf
}

// Push appends a single element, failing with [qerr.ScratchOverflow]
// if the pad is already at capacity.
func (p *Pad[T]) Push(elem T) error {
	if len(p.buf) >= cap(p.buf) {
		return qerr.New(qerr.ScratchOverflow)
	}
	p.buf = append(p.buf, elem)
	return nil
}

// Append adds a whole slice at once, failing with
// [qerr.ScratchOverflow] (and leaving the pad unchanged) if it
// wouldn't fit.
func (p *Pad[T]) Append(elems []T) error {
	if len(p.buf)+len(elems) > cap(p.buf) {
		return qerr.New(qerr.ScratchOverflow)
	}
	p.buf = append(p.buf, elems...)
	return nil
}
