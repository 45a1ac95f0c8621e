// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// Package pipeline implements C8 of the ES-to-TS packetizer: orchestrating
// PSI emission and the build-unit/pack/fragment loop against a byte sink.
package pipeline

import (
	"github.com/1008610010/mts-utils/pkg/base"
	"github.com/1008610010/mts-utils/pkg/mpegts"
	"github.com/1008610010/mts-utils/pkg/vidtype"
)

// Config is the set of knobs the CLI surface exposes.
type Config struct {
	// VideoPid is the PID carrying PES-wrapped ES units. Default 0x68.
	VideoPid uint16

	// PmtPid is the PID carrying the PMT section. Default 0x66.
	PmtPid uint16

	// ForcedType overrides auto-detection. vidtype.Unknown means "let the
	// pipeline decide" (auto-detect on a seekable source, H262 default
	// otherwise).
	ForcedType vidtype.StreamType

	// MaxUnits stops the pipeline after this many ES units have been
	// written. 0 means unlimited.
	MaxUnits int

	// Verbose, when true, logs a line per ES unit as it's processed.
	Verbose bool
}

// Validate checks the PID and budget constraints: PAT/null PIDs are
// reserved, video and PMT PIDs must be disjoint, and a negative unit
// budget makes no sense.
func (c Config) Validate() error {
	if c.VideoPid == mpegts.PidPat || c.VideoPid == mpegts.PidNull {
		return base.ErrInvalidConfig
	}
	if c.PmtPid == mpegts.PidPat || c.PmtPid == mpegts.PidNull {
		return base.ErrInvalidConfig
	}
	if c.VideoPid == c.PmtPid {
		return base.ErrInvalidConfig
	}
	if c.MaxUnits < 0 {
		return base.ErrInvalidConfig
	}
	return nil
}
