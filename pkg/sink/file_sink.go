// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package sink

import "os"

// FileSink writes TS output to a regular file, created (or truncated) on
// open. Grounded on the teacher's mpegts.FileWriter type, generalized to
// implement Sink.
type FileSink struct {
	fp *os.File
}

// NewFileSink creates (or truncates) filename and returns a Sink writing
// to it.
func NewFileSink(filename string) (*FileSink, error) {
	fp, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	return &FileSink{fp: fp}, nil
}

func (s *FileSink) Write(b []byte) (int, error) {
	return s.fp.Write(b)
}

func (s *FileSink) Close() error {
	return s.fp.Close()
}
