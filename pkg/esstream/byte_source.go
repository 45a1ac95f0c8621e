// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// Package esstream implements C1-C3 of the ES-to-TS packetizer: a
// peekable byte source, startcode scanning, and whole-ES-unit assembly.
package esstream

import (
	"bufio"
	"io"
)

// minLookahead is the smallest peek window ByteSource must support so the
// type detector and startcode scanner always have enough bytes in view.
const minLookahead = 12

// peekWindow is how far ByteSource buffers ahead for TypeDetector, which
// wants to look at up to 4KiB of leading stream per spec.
const peekWindow = 4096

// ByteSource is a finite, forward-only byte stream with a small lookahead
// buffer, grounded on the teacher's preference for bufio-backed readers
// over hand-rolled buffering (see pkg/httpflv, pkg/rtmp session readers).
type ByteSource struct {
	br     *bufio.Reader
	closer io.Closer
}

// NewByteSource wraps r. If r implements io.Closer, Close will close it.
func NewByteSource(r io.Reader) *ByteSource {
	size := peekWindow
	if size < minLookahead {
		size = minLookahead
	}
	s := &ByteSource{br: bufio.NewReaderSize(r, size)}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// ReadByte consumes and returns the next byte, or io.EOF at end of stream.
func (s *ByteSource) ReadByte() (byte, error) {
	return s.br.ReadByte()
}

// Peek returns up to n bytes without consuming them. Near end of stream it
// returns fewer than n bytes alongside a non-nil error (io.EOF or
// io.ErrUnexpectedEOF, per bufio.Reader.Peek).
func (s *ByteSource) Peek(n int) ([]byte, error) {
	return s.br.Peek(n)
}

// Close releases the underlying reader, if it is closeable.
func (s *ByteSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
