// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package esstream

import (
	"io"

	"github.com/1008610010/mts-utils/pkg/base"
)

// Unit is one ES access unit: a startcode and everything up to (but not
// including) the next startcode, or end of stream.
type Unit struct {
	// Data begins with 00 00 01 <startcode_byte>.
	Data []byte

	// StartOffset is informational: the byte offset of this unit's
	// startcode prefix within the original elementary stream. Zero bytes
	// beyond the two of a startcode prefix are not counted, so after such
	// a prefix the offsets that follow are short by that many bytes.
	StartOffset int
}

// DataLen returns len(u.Data).
func (u *Unit) DataLen() int {
	return len(u.Data)
}

// Builder groups consecutive bytes between startcodes into whole ES units.
// Call NextUnit repeatedly until it returns io.EOF.
type Builder struct {
	scanner *StartcodeScanner
	logger  base.Logger

	started bool
	done    bool

	pendingSC byte
	offset    int
}

// NewBuilder constructs a Builder reading startcodes from scanner.
func NewBuilder(scanner *StartcodeScanner, logger base.Logger) *Builder {
	return &Builder{scanner: scanner, logger: logger}
}

// NextUnit returns the next whole ES unit.
//
// On the very first call it locates the first startcode, discarding any
// leading non-startcode bytes and logging a warning if it had to discard
// anything. If the stream contains data but no startcode at all, it
// returns base.ErrMalformedInput; if the stream is simply empty, it
// returns io.EOF without complaint (an empty ES is not malformed, it is
// an ES with zero units).
func (b *Builder) NextUnit() (*Unit, error) {
	if b.done {
		return nil, io.EOF
	}

	if !b.started {
		skipped, sc, err := b.scanner.Next()
		if err != nil {
			b.done = true
			if err != io.EOF {
				return nil, err
			}
			if len(skipped) > 0 {
				b.logger.Warnf("esstream: lost sync, discarded %d byte(s) with no startcode found", len(skipped))
				return nil, base.ErrMalformedInput
			}
			return nil, io.EOF
		}
		if len(skipped) > 0 {
			b.logger.Warnf("esstream: lost sync, discarded %d byte(s) before first startcode", len(skipped))
		}
		b.offset = len(skipped)
		b.pendingSC = sc
		b.started = true
	}

	startOffset := b.offset
	data := make([]byte, 0, 256)
	data = append(data, 0x00, 0x00, 0x01, b.pendingSC)

	payload, nextSC, err := b.scanner.Next()
	data = append(data, payload...)
	b.offset += len(data)

	if err != nil {
		if err != io.EOF {
			// A genuine read failure mid-unit: surface it, don't hand back
			// a partially-read unit.
			b.done = true
			return nil, err
		}
		// EOF while scanning for the following startcode: this unit runs
		// to the end of the stream.
		b.done = true
		return &Unit{Data: data, StartOffset: startOffset}, nil
	}

	b.pendingSC = nextSC
	return &Unit{Data: data, StartOffset: startOffset}, nil
}
