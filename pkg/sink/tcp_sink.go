// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package sink

import "net"

// TcpSink writes TS output to a TCP connection, dialed once at open. A
// write failure here (a reset or closed peer) is returned as the
// connection's own error and aborts the pipeline — there is no retry.
type TcpSink struct {
	conn net.Conn
}

// NewTcpSink dials addr (host:port) and returns a Sink writing to the
// resulting connection.
func NewTcpSink(addr string) (*TcpSink, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &TcpSink{conn: conn}, nil
}

func (s *TcpSink) Write(b []byte) (int, error) {
	return s.conn.Write(b)
}

func (s *TcpSink) Close() error {
	return s.conn.Close()
}
