// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package esstream_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/1008610010/mts-utils/pkg/esstream"
	"github.com/q191201771/naza/pkg/assert"
)

func TestStartcodeScannerFindsLeadingStartcode(t *testing.T) {
	src := esstream.NewByteSource(bytes.NewReader([]byte{0x00, 0x00, 0x01, 0xB3, 0x11, 0x22}))
	scanner := esstream.NewStartcodeScanner(src)

	skipped, sc, err := scanner.Next()
	assert.Equal(t, nil, err)
	assert.Equal(t, []byte(nil), skipped)
	assert.Equal(t, byte(0xB3), sc)
}

func TestStartcodeScannerSkipsLeadingJunk(t *testing.T) {
	src := esstream.NewByteSource(bytes.NewReader([]byte{0xFF, 0xEE, 0x00, 0x00, 0x01, 0x00}))
	scanner := esstream.NewStartcodeScanner(src)

	skipped, sc, err := scanner.Next()
	assert.Equal(t, nil, err)
	assert.Equal(t, []byte{0xFF, 0xEE}, skipped)
	assert.Equal(t, byte(0x00), sc)
}

func TestStartcodeScannerToleratesExtraLeadingZeros(t *testing.T) {
	src := esstream.NewByteSource(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x00, 0x01, 0xB3}))
	scanner := esstream.NewStartcodeScanner(src)

	skipped, sc, err := scanner.Next()
	assert.Equal(t, nil, err)
	assert.Equal(t, []byte(nil), skipped)
	assert.Equal(t, byte(0xB3), sc)
}

func TestStartcodeScannerTwoUnitsInSequence(t *testing.T) {
	src := esstream.NewByteSource(bytes.NewReader([]byte{
		0x00, 0x00, 0x01, 0xB3, 0xAA, 0xBB,
		0x00, 0x00, 0x01, 0x00, 0xCC,
	}))
	scanner := esstream.NewStartcodeScanner(src)

	_, sc1, err := scanner.Next()
	assert.Equal(t, nil, err)
	assert.Equal(t, byte(0xB3), sc1)

	skipped, sc2, err := scanner.Next()
	assert.Equal(t, nil, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, skipped)
	assert.Equal(t, byte(0x00), sc2)

	_, _, err = scanner.Next()
	assert.Equal(t, io.EOF, err)
}

func TestStartcodeScannerNoStartcodeAtAll(t *testing.T) {
	src := esstream.NewByteSource(bytes.NewReader([]byte{0x11, 0x22, 0x33}))
	scanner := esstream.NewStartcodeScanner(src)

	skipped, _, err := scanner.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []byte{0x11, 0x22, 0x33}, skipped)
}

func TestStartcodeScannerDanglingPrefixAtEOF(t *testing.T) {
	src := esstream.NewByteSource(bytes.NewReader([]byte{0xAB, 0x00, 0x00, 0x01}))
	scanner := esstream.NewStartcodeScanner(src)

	skipped, _, err := scanner.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []byte{0xAB, 0x00, 0x00, 0x01}, skipped)
}

func TestStartcodeScannerFlushesTrailingZeroOnEOF(t *testing.T) {
	src := esstream.NewByteSource(bytes.NewReader([]byte{0x00, 0x00, 0x01, 0xB3, 0x01, 0x02, 0x00}))
	scanner := esstream.NewStartcodeScanner(src)

	_, sc, err := scanner.Next()
	assert.Equal(t, nil, err)
	assert.Equal(t, byte(0xB3), sc)

	skipped, _, err := scanner.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x00}, skipped)
}

func TestStartcodeScannerDanglingPrefixAfterContentFlushesAll(t *testing.T) {
	src := esstream.NewByteSource(bytes.NewReader([]byte{0xAB, 0x00, 0x00, 0x00, 0x01}))
	scanner := esstream.NewStartcodeScanner(src)

	skipped, _, err := scanner.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []byte{0xAB, 0x00, 0x00, 0x00, 0x01}, skipped)
}

func TestStartcodeScannerEmptyInput(t *testing.T) {
	src := esstream.NewByteSource(bytes.NewReader(nil))
	scanner := esstream.NewStartcodeScanner(src)

	skipped, _, err := scanner.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []byte(nil), skipped)
}
