// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package mpegts

import (
	"io"

	"github.com/q191201771/naza/pkg/nazabits"
)

// PacketHeader is the 4-byte fixed header every TS packet starts with.
type PacketHeader struct {
	Sync             uint8
	TransportErr     uint8
	PayloadUnitStart uint8
	Priority         uint8
	Pid              uint16
	ScramblingCtrl   uint8
	AdaptationCtrl   uint8
	CC               uint8
}

// ParsePacketHeader reads the fixed 4-byte header from the front of a
// 188-byte TS packet.
func ParsePacketHeader(b []byte) PacketHeader {
	br := nazabits.NewBitReader(b)
	var h PacketHeader
	h.Sync, _ = br.ReadBits8(8)
	h.TransportErr, _ = br.ReadBits8(1)
	h.PayloadUnitStart, _ = br.ReadBits8(1)
	h.Priority, _ = br.ReadBits8(1)
	h.Pid, _ = br.ReadBits16(13)
	h.ScramblingCtrl, _ = br.ReadBits8(2)
	h.AdaptationCtrl, _ = br.ReadBits8(2)
	h.CC, _ = br.ReadBits8(4)
	return h
}

// tsPayloadLen is how many payload bytes fit in a TS packet carrying no
// adaptation field: 188 - 4-byte header.
const tsPayloadLen = TsPacketLen - 4

// TSPacketizer fragments PES packets and PSI sections into 188-byte TS
// packets, writing each one to sink as soon as it's built. It owns the
// continuity-counter table exclusively — nothing else in this module
// touches per-PID counters.
type TSPacketizer struct {
	sink io.Writer
	cc   map[uint16]uint8
}

// NewTSPacketizer builds a TSPacketizer writing to sink. Every PID's
// continuity counter starts at 0.
func NewTSPacketizer(sink io.Writer) *TSPacketizer {
	return &TSPacketizer{
		sink: sink,
		cc:   make(map[uint16]uint8),
	}
}

// WritePSI fragments a PAT or PMT section (as built by BuildPat/BuildPmt)
// into a single TS packet on pid, prepending the pointer_field PSI
// sections require.
func (p *TSPacketizer) WritePSI(pid uint16, section []byte) error {
	data := make([]byte, 1+len(section))
	data[0] = 0x00 // pointer_field
	copy(data[1:], section)
	return p.writeStream(pid, data)
}

// WritePES fragments one PES packet (as built by PackPes) into one or
// more TS packets on pid.
func (p *TSPacketizer) WritePES(pid uint16, pes []byte) error {
	return p.writeStream(pid, pes)
}

// writeStream is the shared fragmentation loop behind WritePSI and
// WritePES: PUSI=1 on the first packet only, adaptation-field stuffing on
// the final, short packet, continuity counter advanced once per packet
// actually written.
func (p *TSPacketizer) writeStream(pid uint16, data []byte) error {
	pos := 0
	first := true
	for pos < len(data) {
		remaining := len(data) - pos
		packet := make([]byte, TsPacketLen)
		packet[0] = SyncByte
		packet[1] = byte((pid >> 8) & 0x1F)
		if first {
			packet[1] |= 0x40 // payload_unit_start_indicator
		}
		packet[2] = byte(pid & 0xFF)

		cc := p.cc[pid]

		var headerLen int
		if remaining >= tsPayloadLen {
			packet[3] = 0x10 | cc // adaptation_field_control = payload only
			headerLen = 4
		} else {
			packet[3] = 0x30 | cc // adaptation_field_control = adaptation + payload
			headerLen = 4 + writeStuffingAdaptation(packet[4:], tsPayloadLen-remaining)
		}

		n := copy(packet[headerLen:], data[pos:])
		pos += n
		first = false

		if err := p.write(packet); err != nil {
			return err
		}
		p.cc[pid] = (cc + 1) & 0x0F
	}
	return nil
}

// writeStuffingAdaptation fills a stuffing-only adaptation field of total
// size size (including its own length byte) starting at out[0], and
// returns size. It handles the degenerate cases: size == 1 means
// adaptation_field_length == 0 and the field is just that one length byte;
// size == 2 means a length byte of 1 followed only by the flags byte, with
// no 0xFF stuffing.
func writeStuffingAdaptation(out []byte, size int) int {
	afLen := size - 1
	out[0] = byte(afLen)
	if afLen >= 1 {
		out[1] = 0x00 // no discontinuity/random-access/ES-priority/PCR/etc
		for i := 2; i < size; i++ {
			out[i] = 0xFF
		}
	}
	return size
}

func (p *TSPacketizer) write(packet []byte) error {
	_, err := p.sink.Write(packet)
	return err
}
