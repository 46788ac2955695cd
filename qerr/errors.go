// Copyright (c) 2025 The qptrie Authors
// SPDX-License-Identifier: MIT

// Package qerr is the error taxonomy shared by every package in this
// module: DNS name parsing, scratch-space overflow, and trie-key
// codec invariant violations all surface one of the [Kind] values
// below, wrapped in an [Error].
package qerr

import "fmt"

// Kind enumerates the ways a fallible operation in this module can
// fail. It is deliberately flat: there is no sub-taxonomy, because
// every caller-visible failure reduces to "which one of these
// happened", not a tree of causes.
type Kind uint8

const (
	// CompressBad marks a compression pointer whose target is not
	// strictly below every offset already parsed for this name, which
	// includes any pointer in a name that starts at offset 0.
	CompressBad Kind = iota + 1
	// CompressChain marks a compression pointer whose target is
	// itself a compression pointer.
	CompressChain
	// LabelType marks a label-length byte in the reserved range
	// 0x40..0xBF (RFC 6891 extended label types, unsupported here).
	LabelType
	// LabelLength marks a textual label longer than 63 octets.
	LabelLength
	// NameLength marks a name whose uncompressed wire length would
	// exceed 255 octets.
	NameLength
	// NameLabels marks a name with more than 128 labels.
	NameLabels
	// NameTruncated marks a wire buffer that ran out before the name
	// did.
	NameTruncated
	// NameSyntax marks a textual name with a misplaced empty label.
	NameSyntax
	// NameTrailing marks textual input with unconsumed bytes after a
	// fully parsed name.
	NameTrailing
	// NameQuotes marks a `"` in textual input, which this parser
	// does not support.
	NameQuotes
	// EscapeBad marks a `\DDD` escape whose three digits decode to a
	// value over 255.
	EscapeBad
	// ScratchOverflow marks a ScratchPad that ran out of capacity.
	ScratchOverflow
	// BugWirePos marks an internal invariant violation: a wire
	// position did not fit in the index type guarding it.
	BugWirePos
	// BugTrieName marks an internal invariant violation while
	// decoding a trie key back into a DNS name.
	BugTrieName
	// WideWire marks a label position that doesn't fit in the
	// narrower WireLabels index type (P = u8).
	WideWire
)

var kindText = map[Kind]string{
	CompressBad:     "name compression not allowed here",
	CompressChain:   "chained compression pointer",
	LabelType:       "unsupported label type",
	LabelLength:     "label length exceeds budget",
	NameLength:      "name exceeds 255 octets",
	NameLabels:      "name exceeds 128 labels",
	NameTruncated:   "wire data truncated",
	NameSyntax:      "misplaced empty label",
	NameTrailing:    "trailing data after name",
	NameQuotes:      "quoted strings not supported",
	EscapeBad:       "decimal escape out of range",
	ScratchOverflow: "scratch pad overflow",
	BugWirePos:      "wire position out of range for index type",
	BugTrieName:     "malformed trie key",
	WideWire:        "label position too wide for index type",
}

// String renders the kind's fixed description, independent of any
// per-error payload.
func (k Kind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return "unknown error"
}

// Error is the concrete error type returned by every fallible
// operation in this module. Byte and int carry kind-specific
// payloads (the offending label-type byte for [LabelType], the
// decoded value for [EscapeBad], the bad position for [BugWirePos]);
// they are zero when the kind doesn't use them.
type Error struct {
	Kind Kind
	Byte byte
	Int  int
}

func (e *Error) Error() string {
	switch e.Kind {
	case LabelType:
		return fmt.Sprintf("%s: 0x%02x", e.Kind, e.Byte)
	case EscapeBad:
		return fmt.Sprintf("%s: %d", e.Kind, e.Int)
	case BugWirePos:
		return fmt.Sprintf("%s: %d", e.Kind, e.Int)
	default:
		return e.Kind.String()
	}
}

// Is reports whether target names the same [Kind], so callers can
// write errors.Is(err, qerr.New(qerr.NameSyntax)) without caring
// about the payload.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds a plain Error carrying no payload.
func New(kind Kind) error {
	return &Error{Kind: kind}
}

// WithByte builds an Error carrying a payload byte, used by
// [LabelType].
func WithByte(kind Kind, b byte) error {
	return &Error{Kind: kind, Byte: b}
}

// WithInt builds an Error carrying a payload int, used by
// [EscapeBad] and [BugWirePos].
func WithInt(kind Kind, n int) error {
	return &Error{Kind: kind, Int: n}
}
