// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// tsinspect is a read-only companion to es2ts: it reads a transport stream
// file, reports the first PAT and PMT it finds, and with -v logs the PID,
// PUSI and continuity counter of every other packet — useful for checking what
// es2ts actually produced without trusting es2ts's own code as the judge.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/1008610010/mts-utils/pkg/mpegts"
	"github.com/q191201771/naza/pkg/nazalog"
)

func main() {
	os.Exit(run())
}

func run() int {
	verbose := flag.Bool("v", false, "log every packet's header, not just PAT/PMT")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: tsinspect [-v] <tsfile>")
		return 1
	}

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "### tsinspect: problem reading file: %v\n", err)
		return 1
	}
	if len(content)%mpegts.TsPacketLen != 0 {
		fmt.Fprintf(os.Stderr, "### tsinspect: file length %d is not a multiple of %d\n", len(content), mpegts.TsPacketLen)
	}

	_ = nazalog.Init(func(option *nazalog.Option) {
		option.AssertBehavior = nazalog.AssertFatal
	})
	defer nazalog.Sync()

	numPackets := len(content) / mpegts.TsPacketLen
	pmtPids := make(map[uint16]bool)
	seenPat, seenPmt := false, false

	for i := 0; i < numPackets; i++ {
		packet := content[i*mpegts.TsPacketLen : (i+1)*mpegts.TsPacketLen]
		h := mpegts.ParsePacketHeader(packet)
		if h.Sync != mpegts.SyncByte {
			nazalog.Errorf("packet #%d: bad sync byte 0x%02X", i, h.Sync)
			continue
		}

		payloadStart := 4
		if h.AdaptationCtrl&0x2 != 0 {
			afLen := int(packet[4])
			payloadStart = 5 + afLen
		}
		if h.AdaptationCtrl&0x1 == 0 || payloadStart >= mpegts.TsPacketLen {
			if *verbose {
				nazalog.Infof("packet #%d: pid=0x%04X pusi=%d cc=%d (no payload)", i, h.Pid, h.PayloadUnitStart, h.CC)
			}
			continue
		}
		payload := packet[payloadStart:]

		switch {
		case h.Pid == mpegts.PidPat && h.PayloadUnitStart == 1 && !seenPat:
			seenPat = true
			section := payload[1+int(payload[0]):] // skip pointer_field + its stuffing, if any
			pat := mpegts.ParsePat(section)
			nazalog.Infof("PAT: transport_stream_id=%d version=%d", pat.TransportStreamId, pat.VersionNumber)
			for _, prog := range pat.Programs {
				nazalog.Infof("  program %d -> PMT PID 0x%04X", prog.ProgramNumber, prog.Pid)
				pmtPids[prog.Pid] = true
			}
		case pmtPids[h.Pid] && h.PayloadUnitStart == 1 && !seenPmt:
			seenPmt = true
			section := payload[1+int(payload[0]):] // skip pointer_field + its stuffing, if any
			pmt := mpegts.ParsePmt(section)
			nazalog.Infof("PMT: program_number=%d pcr_pid=0x%04X version=%d", pmt.ProgramNumber, pmt.PcrPid, pmt.VersionNumber)
			for _, s := range pmt.Streams {
				nazalog.Infof("  stream_type=0x%02X -> PID 0x%04X", s.StreamType, s.Pid)
			}
		default:
			if *verbose {
				nazalog.Infof("packet #%d: pid=0x%04X pusi=%d cc=%d", i, h.Pid, h.PayloadUnitStart, h.CC)
			}
		}
	}

	if !seenPat {
		nazalog.Warnf("no PAT found in %d packet(s)", numPackets)
	}
	if !seenPmt {
		nazalog.Warnf("no PMT found in %d packet(s)", numPackets)
	}
	return 0
}
