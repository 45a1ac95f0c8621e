// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package pipeline

import (
	"io"

	"github.com/1008610010/mts-utils/pkg/base"
	"github.com/1008610010/mts-utils/pkg/esstream"
	"github.com/1008610010/mts-utils/pkg/mpegts"
	"github.com/1008610010/mts-utils/pkg/vidtype"
)

// Pipeline is the single-threaded, synchronous orchestrator tying the
// detector, unit builder, PES packer, and TS packetizer together: one
// ByteSource, one sink, strictly sequential emission, no shared mutable
// state beyond the PID/continuity table the TSPacketizer already owns.
type Pipeline struct {
	cfg    Config
	logger base.Logger
}

// New validates cfg and builds a Pipeline. A nil logger defaults to
// base.DefaultLogger() (naza's global logger) — nothing inside the
// pipeline or the components it constructs ever reaches for that global
// itself, New is the one explicit place that does.
func New(cfg Config, logger base.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = base.DefaultLogger()
	}
	return &Pipeline{cfg: cfg, logger: logger}, nil
}

// Run writes a complete, self-contained TS stream to snk: PAT, PMT, then
// one PES-wrapped TS fragment run per ES unit, honoring cfg.MaxUnits.
//
// seekable tells Run whether src supports the Peek-ahead auto-detection
// needs; callers pass false for stdin/TCP sources even though
// esstream.ByteSource itself can always Peek (it buffers ahead
// regardless) — the point is that a non-seekable transport gives the
// caller no second chance to force the type after guessing wrong, so
// detection is skipped by policy, not by capability.
//
// Run returns base.ErrBudgetReached (not wrapped, checkable with ==) when
// cfg.MaxUnits stopped it early; callers should treat that the same as a
// nil error, since reaching the budget is an intentional stopping point,
// not a failure.
func (p *Pipeline) Run(src *esstream.ByteSource, seekable bool, snk io.Writer) (unitsWritten int, err error) {
	streamType := p.cfg.ForcedType
	if streamType == vidtype.Unknown {
		if seekable {
			d := vidtype.NewDetector(p.logger)
			streamType, err = d.Detect(src)
			if err != nil {
				return 0, err
			}
			if streamType == vidtype.Unknown {
				// An empty stream has no startcodes to classify; it still
				// gets a PAT/PMT pair, with the H262 default.
				if _, perr := src.Peek(1); perr != io.EOF {
					return 0, base.ErrUnknownStreamType
				}
				streamType = vidtype.H262
			}
		} else {
			streamType = vidtype.H262
		}
	}

	pmtStreamType, err := streamType.PMTStreamType()
	if err != nil {
		return 0, err
	}

	tsp := mpegts.NewTSPacketizer(snk)

	pat := mpegts.BuildPat(mpegts.DefaultTransportStreamId, mpegts.DefaultProgramNumber, p.cfg.PmtPid)
	if err = tsp.WritePSI(mpegts.PidPat, pat); err != nil {
		return 0, err
	}

	pmt := mpegts.BuildPmt(mpegts.DefaultProgramNumber, p.cfg.VideoPid, p.cfg.VideoPid, pmtStreamType)
	if err = tsp.WritePSI(p.cfg.PmtPid, pmt); err != nil {
		return 0, err
	}

	scanner := esstream.NewStartcodeScanner(src)
	builder := esstream.NewBuilder(scanner, p.logger)

	for {
		if p.cfg.MaxUnits > 0 && unitsWritten >= p.cfg.MaxUnits {
			return unitsWritten, base.ErrBudgetReached
		}

		unit, uerr := builder.NextUnit()
		if uerr == io.EOF {
			return unitsWritten, nil
		}
		if uerr != nil {
			return unitsWritten, uerr
		}

		if p.cfg.Verbose {
			p.logger.Infof("pipeline: unit #%d, start_offset=%d, startcode=0x%02X, %d byte(s)",
				unitsWritten+1, unit.StartOffset, unit.Data[3], unit.DataLen())
		}

		pes := mpegts.PackPes(unit.Data)
		if err = tsp.WritePES(p.cfg.VideoPid, pes); err != nil {
			return unitsWritten, err
		}
		unitsWritten++
	}
}
