// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package sink_test

import (
	"io"
	"net"
	"os"
	"testing"

	"github.com/1008610010/mts-utils/pkg/sink"
	"github.com/q191201771/naza/pkg/assert"
)

func TestFileSink(t *testing.T) {
	path := os.TempDir() + "/mts-utils-filesink-test.ts"
	defer os.Remove(path)

	s, err := sink.NewFileSink(path)
	assert.Equal(t, nil, err)

	n, err := s.Write([]byte{0x47, 0x00, 0x00, 0x10})
	assert.Equal(t, nil, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, nil, s.Close())

	content, err := os.ReadFile(path)
	assert.Equal(t, nil, err)
	assert.Equal(t, []byte{0x47, 0x00, 0x00, 0x10}, content)
}

func TestTcpSink(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.Equal(t, nil, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 188)
		_, _ = io.ReadFull(conn, buf)
		received <- buf
	}()

	s, err := sink.NewTcpSink(ln.Addr().String())
	assert.Equal(t, nil, err)

	packet := make([]byte, 188)
	packet[0] = 0x47
	_, err = s.Write(packet)
	assert.Equal(t, nil, err)
	assert.Equal(t, nil, s.Close())

	got := <-received
	assert.Equal(t, packet, got)
}
