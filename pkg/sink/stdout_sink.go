// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package sink

import "os"

// StdoutSink writes TS output to the process's standard output, letting
// the CLI be piped into another consumer. Close is a no-op: the process
// owns os.Stdout, not this sink.
type StdoutSink struct{}

// NewStdoutSink returns a Sink writing to os.Stdout.
func NewStdoutSink() *StdoutSink {
	return &StdoutSink{}
}

func (s *StdoutSink) Write(b []byte) (int, error) {
	return os.Stdout.Write(b)
}

func (s *StdoutSink) Close() error {
	return nil
}
