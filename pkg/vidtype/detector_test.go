// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package vidtype

import (
	"bytes"
	"testing"

	"github.com/1008610010/mts-utils/pkg/base"
	"github.com/1008610010/mts-utils/pkg/esstream"
	"github.com/q191201771/naza/pkg/assert"
)

func detect(t *testing.T, raw []byte) StreamType {
	src := esstream.NewByteSource(bytes.NewReader(raw))
	d := NewDetector(base.DefaultLogger())
	st, err := d.Detect(src)
	assert.Equal(t, nil, err)
	return st
}

func TestDetectH262(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x01, 0xB3, 0x11, 0x22, 0x00, 0x00, 0x01, 0x00, 0x33}
	assert.Equal(t, H262, detect(t, raw))
}

func TestDetectH264(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x01, 0x67, 0xAA, 0x00, 0x00, 0x01, 0x68, 0xBB, 0x00, 0x00, 0x01, 0x65, 0xCC}
	assert.Equal(t, H264, detect(t, raw))
}

func TestDetectAVS(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x01, 0xB0, 0x11, 0x00, 0x00, 0x01, 0xB3, 0x22}
	assert.Equal(t, AVS, detect(t, raw))
}

func TestDetectUnknownNoStartcode(t *testing.T) {
	raw := []byte{0x11, 0x22, 0x33, 0x44}
	assert.Equal(t, Unknown, detect(t, raw))
}

func TestDetectUnknownUnrecognisedFirstByte(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x01, 0xFE, 0x11, 0x22}
	assert.Equal(t, Unknown, detect(t, raw))
}

func TestPMTStreamType(t *testing.T) {
	b, err := H262.PMTStreamType()
	assert.Equal(t, nil, err)
	assert.Equal(t, byte(PMTStreamTypeH262), b)

	b, err = H264.PMTStreamType()
	assert.Equal(t, nil, err)
	assert.Equal(t, byte(PMTStreamTypeH264), b)

	b, err = AVS.PMTStreamType()
	assert.Equal(t, nil, err)
	assert.Equal(t, byte(PMTStreamTypeAVS), b)

	_, err = Unknown.PMTStreamType()
	assert.Equal(t, base.ErrUnknownStreamType, err)
}
