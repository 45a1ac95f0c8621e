// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package base

import "github.com/q191201771/naza/pkg/nazalog"

// Logger is the logging capability every core component depends on. It is
// always provided explicitly by the caller that constructs a component;
// the only place in the core that falls back to a global logger is
// pipeline.New, when it is handed a nil Logger (see DefaultLogger).
//
// github.com/q191201771/naza/pkg/nazalog.Logger already has the right
// shape (Debugf/Infof/Warnf/Errorf and friends), so we reuse it by name
// instead of declaring a parallel interface.
type Logger = nazalog.Logger

// DefaultLogger returns naza's global logger. It exists as a single,
// explicit place for callers (the CLI) to obtain a default Logger value to
// hand to pipeline.New; inside the core, only pipeline.New calls it, to
// fill in a nil Logger.
func DefaultLogger() Logger {
	return nazalog.GetGlobalLogger()
}
