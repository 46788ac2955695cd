// Copyright (c) 2025 The qptrie Authors
// SPDX-License-Identifier: MIT

package dnsname

import (
	"errors"
	"testing"

	"github.com/fanf2/qptrie/qerr"
)

func TestScratchNameFromWireLowerCases(t *testing.T) {
	wire := append([]byte{3, 'W', 'W', 'W'}, 0)
	n := NewScratchName()
	end, err := n.FromWire(wire, 0)
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}
	if end != len(wire) {
		t.Fatalf("end = %d, want %d", end, len(wire))
	}
	lab0, ok := n.Label(0)
	if !ok || string(lab0) != "www" {
		t.Fatalf("Label(0) = %q, %v, want %q", lab0, ok, "www")
	}
}

func TestScratchNameFromWireRejectsStandaloneCompression(t *testing.T) {
	wire := []byte{3, 'w', 'w', 'w', 0xC0, 0x00}
	n := NewScratchName()
	_, err := n.FromWire(wire, 0)
	if !errors.Is(err, qerr.New(qerr.CompressBad)) {
		t.Fatalf("FromWire = %v, want CompressBad", err)
	}
}

func TestScratchNameClearedAfterError(t *testing.T) {
	n := NewScratchName()
	if _, err := n.FromText([]byte("a..b")); err == nil {
		t.Fatalf("expected a syntax error")
	}
	if n.Labs() != 0 || n.Nlen() != 0 {
		t.Fatalf("ScratchName should be cleared after a failed parse")
	}
}

func TestScratchNameFromTextTrailingDotOptional(t *testing.T) {
	a := NewScratchName()
	if _, err := a.FromText([]byte("dotat.at")); err != nil {
		t.Fatalf("FromText: %v", err)
	}
	b := NewScratchName()
	if _, err := b.FromText([]byte("dotat.at.")); err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if !Equal(&a, &b) {
		t.Fatalf("trailing dot should not change the parsed name")
	}
}

func TestScratchNameFromTextReportsConsumed(t *testing.T) {
	n := NewScratchName()
	consumed, err := n.FromText([]byte("dotat.at more stuff"))
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if consumed != len("dotat.at") {
		t.Fatalf("consumed = %d, want %d", consumed, len("dotat.at"))
	}
}

func TestHeapNameFromTextRejectsTrailingGarbage(t *testing.T) {
	if _, err := HeapNameFromText([]byte("dotat.at garbage")); !errors.Is(err, qerr.New(qerr.NameTrailing)) {
		t.Fatalf("HeapNameFromText = %v, want NameTrailing", err)
	}
}

func TestScratchNameOverlongLabelIsLabelLength(t *testing.T) {
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	n := NewScratchName()
	_, err := n.FromText(long)
	if !errors.Is(err, qerr.New(qerr.LabelLength)) {
		t.Fatalf("FromText = %v, want LabelLength", err)
	}
}
