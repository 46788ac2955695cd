// Copyright (c) 2025 The qptrie Authors
// SPDX-License-Identifier: MIT

package triekey

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/fanf2/qptrie/dnsname"
)

func mustHeapText(t *testing.T, text string) dnsname.HeapName {
	t.Helper()
	h, err := dnsname.HeapNameFromText([]byte(text))
	if err != nil {
		t.Fatalf("HeapNameFromText(%q): %v", text, err)
	}
	return h
}

func TestTrieNameRoundTrip(t *testing.T) {
	cases := []string{".", "at.", "dotat.at.", "www.dotat.at.", "a-b_c.example."}
	for _, text := range cases {
		name := mustHeapText(t, text)
		k := NewTrieName()
		if err := k.Encode(name); err != nil {
			t.Fatalf("Encode(%q): %v", text, err)
		}
		got, err := k.Decode()
		if err != nil {
			t.Fatalf("Decode(%q): %v", text, err)
		}
		if !dnsname.NameEqual(got, name) {
			t.Fatalf("round trip of %q gave %q", text, dnsname.Text(got))
		}
	}
}

func TestTrieNameOrderingAgreesWithCanonicalOrdering(t *testing.T) {
	texts := []string{".", "at.", "dotat.at.", "www.dotat.at.", "zz.at."}
	for i := 0; i+1 < len(texts); i++ {
		a, b := mustHeapText(t, texts[i]), mustHeapText(t, texts[i+1])

		ka := NewTrieName()
		kb := NewTrieName()
		if err := ka.Encode(a); err != nil {
			t.Fatalf("Encode(%q): %v", texts[i], err)
		}
		if err := kb.Encode(b); err != nil {
			t.Fatalf("Encode(%q): %v", texts[i+1], err)
		}
		if bytes.Compare(ka.AsSlice(), kb.AsSlice()) >= 0 {
			t.Fatalf("trie key of %q should sort before %q", texts[i], texts[i+1])
		}
	}
}

func TestTrieNameCaseFolding(t *testing.T) {
	a := mustHeapText(t, "DotAt.AT.")
	b := mustHeapText(t, "dotat.at.")

	ka := NewTrieName()
	kb := NewTrieName()
	if err := ka.Encode(a); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := kb.Encode(b); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(ka.AsSlice(), kb.AsSlice()) {
		t.Fatalf("case-differing names should encode to the same trie key")
	}
}

// TestTrieNameStressRoundTrip implements the round-trip property over
// a wide spread of random hostnames, including bytes that need the
// escape-table's two-byte encoding.
func TestTrieNameStressRoundTrip(t *testing.T) {
	prng := rand.New(rand.NewPCG(24680, 13579))
	alphabet := "abcdefghijklmnopqrstuvwxyz0123456789-_.~!"

	for i := 0; i < 2000; i++ {
		numLabels := 1 + prng.IntN(4)
		var buf bytes.Buffer
		for l := 0; l < numLabels; l++ {
			labLen := 1 + prng.IntN(8)
			for c := 0; c < labLen; c++ {
				buf.WriteByte(alphabet[prng.IntN(len(alphabet))])
			}
			buf.WriteByte('.')
		}

		name, err := dnsname.HeapNameFromText(buf.Bytes())
		if err != nil {
			continue // the random alphabet can produce a stray syntax edge case
		}

		k := NewTrieName()
		if err := k.Encode(name); err != nil {
			t.Fatalf("Encode(%q): %v", buf.String(), err)
		}
		got, err := k.Decode()
		if err != nil {
			t.Fatalf("Decode(%q): %v", buf.String(), err)
		}
		if !dnsname.NameEqual(got, name) {
			t.Fatalf("round trip of %q gave %q", buf.String(), dnsname.Text(got))
		}
	}
}
