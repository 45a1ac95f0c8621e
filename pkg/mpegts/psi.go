// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package mpegts

import (
	"github.com/q191201771/naza/pkg/bele"
	"github.com/q191201771/naza/pkg/nazabits"
)

// BuildPat builds a Program Association Table section declaring exactly
// one program (programNumber) mapped to pmtPid, terminated by its
// CRC-32/MPEG-2. The returned bytes start at table_id and do not include
// the pointer_field TSPacketizer prepends for PSI sections.
//
// <iso13818-1.pdf> <2.4.4.3> <page 61/174>
func BuildPat(transportStreamId, programNumber, pmtPid uint16) []byte {
	// section_syntax_indicator(1)+'0'(1)+reserved(2)+section_length(12)
	// + transport_stream_id(16)+reserved(2)+version(5)+current_next(1)
	// + section_number(8)+last_section_number(8)
	// + program_number(16)+reserved(3)+pmt_pid(13) + crc32(32)
	sectionLength := 5 + 4 + 4 // syntax section header + one program entry + crc32
	buf := make([]byte, 3+sectionLength)

	bw := nazabits.NewBitWriter(buf)
	bw.WriteBits8(8, TableIdPat)
	bw.WriteBit(1) // section_syntax_indicator
	bw.WriteBit(0)
	bw.WriteBits8(2, 0x3)
	bw.WriteBits16(12, uint16(sectionLength))

	bw.WriteBits16(16, transportStreamId)
	bw.WriteBits8(2, 0x3)
	bw.WriteBits8(5, DefaultVersionNumber)
	bw.WriteBit(1) // current_next_indicator
	bw.WriteBits8(8, 0)
	bw.WriteBits8(8, 0)

	bw.WriteBits16(16, programNumber)
	bw.WriteBits8(3, 0x7)
	bw.WriteBits16(13, pmtPid)

	crc := CalcCrc32Mpeg(0xFFFFFFFF, buf[:len(buf)-4])
	bele.BePutUint32(buf[len(buf)-4:], crc)
	return buf
}

// BuildPmt builds a Program Map Table section for one video elementary
// stream, terminated by its CRC-32/MPEG-2. pcrPid is conventionally set to
// the video PID even though this module never emits a PCR field — a
// deliberate simplification, since a stream-copy packetizer has no clock
// of its own to stamp into one.
//
// <iso13818-1.pdf> <2.4.4.8> <page 64/174>
func BuildPmt(programNumber, pcrPid, videoPid uint16, streamType uint8) []byte {
	sectionLength := 5 + 4 + 5 + 4 // syntax section header + PCR/info-length fields + one ES entry + crc32
	buf := make([]byte, 3+sectionLength)

	bw := nazabits.NewBitWriter(buf)
	bw.WriteBits8(8, TableIdPmt)
	bw.WriteBit(1)
	bw.WriteBit(0)
	bw.WriteBits8(2, 0x3)
	bw.WriteBits16(12, uint16(sectionLength))

	bw.WriteBits16(16, programNumber)
	bw.WriteBits8(2, 0x3)
	bw.WriteBits8(5, DefaultVersionNumber)
	bw.WriteBit(1)
	bw.WriteBits8(8, 0)
	bw.WriteBits8(8, 0)

	bw.WriteBits8(3, 0x7)
	bw.WriteBits16(13, pcrPid)
	bw.WriteBits8(4, 0xF)
	bw.WriteBits16(12, 0) // program_info_length

	bw.WriteBits8(8, streamType)
	bw.WriteBits8(3, 0x7)
	bw.WriteBits16(13, videoPid)
	bw.WriteBits8(4, 0xF)
	bw.WriteBits16(12, 0) // ES_info_length

	crc := CalcCrc32Mpeg(0xFFFFFFFF, buf[:len(buf)-4])
	bele.BePutUint32(buf[len(buf)-4:], crc)
	return buf
}

// Pat is a parsed Program Association section, used by cmd/tsinspect and
// by this package's tests to check what was just built.
type Pat struct {
	TableId              uint8
	SectionLength        uint16
	TransportStreamId    uint16
	VersionNumber        uint8
	CurrentNextIndicator uint8
	Programs             []PatProgram
	Crc32                uint32
}

type PatProgram struct {
	ProgramNumber uint16
	Pid           uint16
}

// ParsePat parses a PAT section starting at table_id (i.e. without a
// leading pointer_field).
func ParsePat(b []byte) Pat {
	br := nazabits.NewBitReader(b)
	var pat Pat
	pat.TableId, _ = br.ReadBits8(8)
	_, _ = br.ReadBits8(1)
	_, _ = br.ReadBits8(3)
	pat.SectionLength, _ = br.ReadBits16(12)
	pat.TransportStreamId, _ = br.ReadBits16(16)
	_, _ = br.ReadBits8(2)
	pat.VersionNumber, _ = br.ReadBits8(5)
	pat.CurrentNextIndicator, _ = br.ReadBits8(1)
	_, _ = br.ReadBits8(8)
	_, _ = br.ReadBits8(8)

	programsLen := pat.SectionLength - 5 - 4
	for i := uint16(0); i < programsLen; i += 4 {
		var p PatProgram
		p.ProgramNumber, _ = br.ReadBits16(16)
		_, _ = br.ReadBits8(3)
		p.Pid, _ = br.ReadBits16(13)
		pat.Programs = append(pat.Programs, p)
	}
	pat.Crc32, _ = br.ReadBits32(32)
	return pat
}

// Pmt is a parsed Program Map section.
type Pmt struct {
	TableId              uint8
	SectionLength        uint16
	ProgramNumber        uint16
	VersionNumber        uint8
	CurrentNextIndicator uint8
	PcrPid               uint16
	Streams              []PmtStream
	Crc32                uint32
}

type PmtStream struct {
	StreamType uint8
	Pid        uint16
}

// ParsePmt parses a PMT section starting at table_id.
func ParsePmt(b []byte) Pmt {
	br := nazabits.NewBitReader(b)
	var pmt Pmt
	pmt.TableId, _ = br.ReadBits8(8)
	_, _ = br.ReadBits8(1)
	_, _ = br.ReadBits8(3)
	pmt.SectionLength, _ = br.ReadBits16(12)
	pmt.ProgramNumber, _ = br.ReadBits16(16)
	_, _ = br.ReadBits8(2)
	pmt.VersionNumber, _ = br.ReadBits8(5)
	pmt.CurrentNextIndicator, _ = br.ReadBits8(1)
	_, _ = br.ReadBits8(8)
	_, _ = br.ReadBits8(8)
	_, _ = br.ReadBits8(3)
	pmt.PcrPid, _ = br.ReadBits16(13)
	_, _ = br.ReadBits8(4)
	programInfoLength, _ := br.ReadBits16(12)
	if programInfoLength > 0 {
		_, _ = br.ReadBytes(uint(programInfoLength))
	}

	streamsLen := pmt.SectionLength - 9 - programInfoLength - 4
	for i := uint16(0); i < streamsLen; {
		var s PmtStream
		s.StreamType, _ = br.ReadBits8(8)
		_, _ = br.ReadBits8(3)
		s.Pid, _ = br.ReadBits16(13)
		_, _ = br.ReadBits8(4)
		esInfoLength, _ := br.ReadBits16(12)
		if esInfoLength > 0 {
			_, _ = br.ReadBytes(uint(esInfoLength))
		}
		pmt.Streams = append(pmt.Streams, s)
		i += 5 + esInfoLength
	}
	pmt.Crc32, _ = br.ReadBits32(32)
	return pmt
}
