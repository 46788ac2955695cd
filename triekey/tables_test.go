// Copyright (c) 2025 The qptrie Authors
// SPDX-License-Identifier: MIT

package triekey

import "testing"

// TestByteToBitsCaseFolding checks the property the original table
// generator exists to guarantee: upper and lower case letters collapse
// onto the same bit-position pair, so the trie is case-insensitive by
// construction rather than by a separate fold-before-encode step.
func TestByteToBitsCaseFolding(t *testing.T) {
	for lower := byte('a'); lower <= 'z'; lower++ {
		upper := lower - 32
		if ByteToBits[upper] != ByteToBits[lower] {
			t.Fatalf("ByteToBits[%q] = %v, want ByteToBits[%q] = %v",
				upper, ByteToBits[upper], lower, ByteToBits[lower])
		}
	}
}

// TestByteToBitsRange checks every assigned bit position stays inside
// the window a branch node's bitmap can represent.
func TestByteToBitsRange(t *testing.T) {
	for i := 0; i <= 255; i++ {
		one, two := ByteToBits[i][0], ByteToBits[i][1]
		if one < ShiftBitmap || one >= ShiftOffset {
			t.Fatalf("ByteToBits[%d][0] = %d out of range", i, one)
		}
		if two != 0 && (two < ShiftBitmap || two >= ShiftOffset) {
			t.Fatalf("ByteToBits[%d][1] = %d out of range", i, two)
		}
	}
}

// TestByteToBitsMonotonic checks that bit positions only ever increase
// as the input byte increases (aside from the 'A'..'Z' rollover gap),
// which is what keeps byte-order and bit-order in agreement for
// canonical trie-key ordering.
func TestByteToBitsMonotonic(t *testing.T) {
	for i := 0; i < 255; i++ {
		j := i + 1
		iOne, iTwo := ByteToBits[i][0], ByteToBits[i][1]
		jOne, jTwo := ByteToBits[j][0], ByteToBits[j][1]
		if iOne > jOne && byte(i) != 'Z' {
			t.Fatalf("bit position decreased from byte %d to %d", i, j)
		}
		if iOne == jOne && iTwo >= jTwo {
			t.Fatalf("byte %d and %d share bit one but don't increase bit two", i, j)
		}
	}
}

func TestBitsToByteInvertsByteToBits(t *testing.T) {
	for i := 0; i <= 255; i++ {
		if i >= 'A' && i <= 'Z' {
			continue // upper case folds onto lower case, not invertible
		}
		one, two := ByteToBits[i][0], ByteToBits[i][1]
		if got := BitsToByte[one][two]; got != byte(i) {
			t.Fatalf("BitsToByte[%d][%d] = %d, want %d", one, two, got, i)
		}
	}
}
