// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package mpegts

// pesHeaderLen is the fixed header size this module ever writes: 3-byte
// startcode prefix, stream_id, 2-byte length, flags1, flags2,
// PES_header_data_length. No PTS/DTS fields.
const pesHeaderLen = 9

// maxPesPacketLength is the largest payload whose PES_packet_length field
// can represent the true length; beyond it the field is written as 0,
// meaning "unbounded", which H.222 permits only for video.
const maxPesPacketLength = 0xFFFF - 3 // flags1+flags2+header_data_length count towards the field

// PackPes wraps payload (one ES unit) in a PES packet carrying no PTS/DTS:
//
//	packet_start_code_prefix  3 bytes  = 00 00 01
//	stream_id                 1 byte   = StreamIdVideo
//	PES_packet_length         2 bytes  = N+3, or 0 if N+3 > 65535
//	flags1                    1 byte   = 0x80
//	flags2                    1 byte   = 0x00
//	PES_header_data_length    1 byte   = 0
//	payload                   N bytes
func PackPes(payload []byte) []byte {
	out := make([]byte, pesHeaderLen+len(payload))
	out[0], out[1], out[2] = 0x00, 0x00, 0x01
	out[3] = StreamIdVideo

	n := len(payload) + 3 // flags1 + flags2 + PES_header_data_length
	if len(payload) > maxPesPacketLength {
		n = 0
	}
	out[4] = byte(n >> 8)
	out[5] = byte(n)

	out[6] = 0x80 // '10' marker, no scrambling/priority/alignment/copyright
	out[7] = 0x00 // no PTS/DTS, no extensions
	out[8] = 0x00 // PES_header_data_length

	copy(out[pesHeaderLen:], payload)
	return out
}

// ParsedPes is a parsed PES header, used by tests asserting round-trip
// equality against the original ES payload.
type ParsedPes struct {
	StreamId         uint8
	PacketLength     uint16
	HeaderDataLength uint8
}

// ParsePes parses the fixed, PTS/DTS-less header this module emits and
// returns the header fields plus the offset at which the payload starts.
func ParsePes(b []byte) (p ParsedPes, payloadOffset int) {
	p.StreamId = b[3]
	p.PacketLength = uint16(b[4])<<8 | uint16(b[5])
	p.HeaderDataLength = b[8]
	payloadOffset = pesHeaderLen + int(p.HeaderDataLength)
	return
}
