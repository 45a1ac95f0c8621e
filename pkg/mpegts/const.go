// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// Package mpegts implements C5-C7 of the ES-to-TS packetizer: PES packet
// framing, 188-byte TS fragmentation with adaptation-field stuffing, and
// PAT/PMT section construction with CRC-32/MPEG-2.
package mpegts

// SyncByte is the fixed first byte of every TS packet.
const SyncByte = 0x47

// TsPacketLen is the fixed size of every TS packet.
const TsPacketLen = 188

// Reserved PIDs.
const (
	PidPat  uint16 = 0x0000
	PidNull uint16 = 0x1FFF
)

// Default PIDs used when the caller doesn't override them.
const (
	DefaultPmtPid   uint16 = 0x66
	DefaultVideoPid uint16 = 0x68
)

// StreamIdVideo is the PES stream_id this module always emits: this is a
// video-only, stream-copy packetizer, never audio.
const StreamIdVideo uint8 = 0xE0

// PSI table_id values.
const (
	TableIdPat uint8 = 0x00
	TableIdPmt uint8 = 0x02
)

// Defaults for the transport stream id, program number, and PSI version
// number used when the caller doesn't override them.
const (
	DefaultTransportStreamId uint16 = 1
	DefaultProgramNumber     uint16 = 1
	DefaultVersionNumber     uint8  = 0
)
