// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package mpegts_test

import (
	"testing"

	"github.com/1008610010/mts-utils/pkg/mpegts"
	"github.com/q191201771/naza/pkg/assert"
)

func TestBuildAndParsePat(t *testing.T) {
	section := mpegts.BuildPat(1, 1, mpegts.DefaultPmtPid)
	assert.Equal(t, mpegts.TableIdPat, section[0])

	pat := mpegts.ParsePat(section)
	assert.Equal(t, uint16(1), pat.TransportStreamId)
	assert.Equal(t, 1, len(pat.Programs))
	assert.Equal(t, uint16(1), pat.Programs[0].ProgramNumber)
	assert.Equal(t, mpegts.DefaultPmtPid, pat.Programs[0].Pid)

	crc := mpegts.CalcCrc32Mpeg(0xFFFFFFFF, section[:len(section)-4])
	assert.Equal(t, crc, pat.Crc32)
}

func TestBuildAndParsePmt(t *testing.T) {
	const streamTypeH264 = 0x1B
	section := mpegts.BuildPmt(1, mpegts.DefaultVideoPid, mpegts.DefaultVideoPid, streamTypeH264)
	assert.Equal(t, mpegts.TableIdPmt, section[0])

	pmt := mpegts.ParsePmt(section)
	assert.Equal(t, uint16(1), pmt.ProgramNumber)
	assert.Equal(t, mpegts.DefaultVideoPid, pmt.PcrPid)
	assert.Equal(t, 1, len(pmt.Streams))
	assert.Equal(t, uint8(streamTypeH264), pmt.Streams[0].StreamType)
	assert.Equal(t, mpegts.DefaultVideoPid, pmt.Streams[0].Pid)

	crc := mpegts.CalcCrc32Mpeg(0xFFFFFFFF, section[:len(section)-4])
	assert.Equal(t, crc, pmt.Crc32)
}
