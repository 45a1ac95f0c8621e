// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package mpegts_test

import (
	"bytes"
	"testing"

	"github.com/1008610010/mts-utils/pkg/mpegts"
	"github.com/q191201771/naza/pkg/assert"
)

func TestWritePSISinglePacket(t *testing.T) {
	buf := &bytes.Buffer{}
	tsp := mpegts.NewTSPacketizer(buf)

	section := mpegts.BuildPat(1, 1, mpegts.DefaultPmtPid)
	err := tsp.WritePSI(mpegts.PidPat, section)
	assert.Equal(t, nil, err)

	out := buf.Bytes()
	assert.Equal(t, mpegts.TsPacketLen, len(out))
	assert.Equal(t, byte(mpegts.SyncByte), out[0])
	assert.Equal(t, byte(0x40), out[1]&0x40) // PUSI set
	assert.Equal(t, byte(0x30), out[3]&0x30) // adaptation_field_control == adaptation + payload (short section, stuffed)
}

func TestWritePESExactlyFillsOnePacket(t *testing.T) {
	buf := &bytes.Buffer{}
	tsp := mpegts.NewTSPacketizer(buf)

	payload := make([]byte, 184-9) // pesHeaderLen is unexported; 184 total minus header
	for i := range payload {
		payload[i] = byte(i)
	}
	pes := mpegts.PackPes(payload)
	assert.Equal(t, 184, len(pes))

	err := tsp.WritePES(mpegts.DefaultVideoPid, pes)
	assert.Equal(t, nil, err)
	assert.Equal(t, mpegts.TsPacketLen, buf.Len())
}

func TestWritePESFragmentsAndStuffsLastPacket(t *testing.T) {
	buf := &bytes.Buffer{}
	tsp := mpegts.NewTSPacketizer(buf)

	payload := make([]byte, 500)
	for i := range payload {
		payload[i] = byte(i)
	}
	pes := mpegts.PackPes(payload)

	err := tsp.WritePES(mpegts.DefaultVideoPid, pes)
	assert.Equal(t, nil, err)

	out := buf.Bytes()
	assert.Equal(t, 0, len(out)%mpegts.TsPacketLen)
	numPackets := len(out) / mpegts.TsPacketLen
	assert.Equal(t, true, numPackets >= 3)

	var reassembled []byte
	for i := 0; i < numPackets; i++ {
		packet := out[i*mpegts.TsPacketLen : (i+1)*mpegts.TsPacketLen]
		assert.Equal(t, byte(mpegts.SyncByte), packet[0])

		pusi := packet[1]&0x40 != 0
		if i == 0 {
			assert.Equal(t, true, pusi)
		} else {
			assert.Equal(t, false, pusi)
		}

		afc := packet[3] & 0x30
		payloadStart := 4
		if afc == 0x30 {
			afLen := int(packet[4])
			payloadStart = 5 + afLen
		}
		reassembled = append(reassembled, packet[payloadStart:]...)
	}

	_, offset := mpegts.ParsePes(reassembled)
	assert.Equal(t, payload, reassembled[offset:])
}

func TestParsePacketHeaderRoundTripsWhatWritePSIWrote(t *testing.T) {
	buf := &bytes.Buffer{}
	tsp := mpegts.NewTSPacketizer(buf)

	section := mpegts.BuildPat(1, 1, mpegts.DefaultPmtPid)
	err := tsp.WritePSI(mpegts.PidPat, section)
	assert.Equal(t, nil, err)

	h := mpegts.ParsePacketHeader(buf.Bytes())
	assert.Equal(t, uint8(mpegts.SyncByte), h.Sync)
	assert.Equal(t, uint8(1), h.PayloadUnitStart)
	assert.Equal(t, mpegts.PidPat, h.Pid)
	assert.Equal(t, uint8(0), h.CC)
}

func TestContinuityCounterIncrementsPerPid(t *testing.T) {
	buf := &bytes.Buffer{}
	tsp := mpegts.NewTSPacketizer(buf)

	payload := make([]byte, 1000)
	pes := mpegts.PackPes(payload)
	err := tsp.WritePES(mpegts.DefaultVideoPid, pes)
	assert.Equal(t, nil, err)

	out := buf.Bytes()
	numPackets := len(out) / mpegts.TsPacketLen
	for i := 0; i < numPackets; i++ {
		packet := out[i*mpegts.TsPacketLen : (i+1)*mpegts.TsPacketLen]
		cc := packet[3] & 0x0F
		assert.Equal(t, uint8(i%16), cc)
	}
}
