// Copyright (c) 2025 The qptrie Authors
// SPDX-License-Identifier: MIT

package dnsname

import "github.com/fanf2/qptrie/qerr"

// dodgy is a panic-free reader over an untrusted byte buffer: every
// access is bounds-checked and returns an error instead of a panic,
// because wire and text input both come straight off the network or
// out of a zone file and must never crash the parser.
type dodgy struct {
	bytes []byte
}

func (d dodgy) get(pos int) (byte, error) {
	if pos < 0 || pos >= len(d.bytes) {
		return 0, qerr.New(qerr.NameTruncated)
	}
	return d.bytes[pos], nil
}

func (d dodgy) slice(pos, length int) ([]byte, error) {
	if pos < 0 || length < 0 || pos+length > len(d.bytes) {
		return nil, qerr.New(qerr.NameTruncated)
	}
	return d.bytes[pos : pos+length], nil
}

// labelEmitter is implemented by the name representations that can be
// built label-by-label straight off the wire: [ScratchName] copies
// and lower-cases each label's bytes, [WireLabels] just records where
// each label starts. dodgyFromWire drives either one through the
// shared compression-aware state machine below.
type labelEmitter interface {
	emitLabel(d dodgy, pos int, llen byte) error
}

// dodgyFromWire runs the DNS name wire format's shared state machine:
// a run of length-prefixed labels (top two bits clear, length 0..63)
// terminated by the zero-length root label, optionally redirected by
// compression pointers (top two bits set).
//
// Compression is handled with a "low water mark" rule: min starts at
// pos and a pointer is only honored if its target is strictly less
// than min, after which min drops to that target. Parsing a name that
// starts at the beginning of its own buffer (min = 0) therefore
// rejects every pointer immediately — exactly the CompressBad a
// standalone, non-message name should get — while parsing a name
// embedded in a full DNS message (min = the name's offset into that
// message) allows the backward-only jumps compression actually needs.
// A pointer whose target is itself another pointer is always
// rejected, independent of the watermark: chained pointers are never
// valid per RFC 1035 §4.1.4.
func dodgyFromWire(emit labelEmitter, d dodgy, pos int) (end int, err error) {
	min := pos
	end = pos
	for {
		b, err := d.get(pos)
		if err != nil {
			return 0, err
		}
		switch {
		case b <= 0x3F:
			llen := b
			if err := emit.emitLabel(d, pos, llen); err != nil {
				return 0, err
			}
			pos += 1 + int(llen)
			if pos > end {
				end = pos
			}
			if llen == 0 {
				return end, nil
			}
		case b <= 0xBF:
			return 0, qerr.WithByte(qerr.LabelType, b)
		default:
			if pos+2 > end {
				end = pos + 2
			}
			lo, err := d.get(pos + 1)
			if err != nil {
				return 0, err
			}
			target := (int(b)&0x3F)<<8 | int(lo)
			next, err := d.get(target)
			if err != nil {
				return 0, err
			}
			if next >= 0xC0 {
				return 0, qerr.New(qerr.CompressChain)
			}
			if target >= min {
				return 0, qerr.New(qerr.CompressBad)
			}
			min = target
			pos = target
		}
	}
}
