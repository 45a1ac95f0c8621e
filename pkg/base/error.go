// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package base

import "errors"

// ----- general -------------------------------------------------------------

var (
	ErrShortBuffer = errors.New("mts-utils: buffer too short")
	ErrIo          = errors.New("mts-utils: io error")
)

// ----- pkg/esstream ----------------------------------------------------------

var (
	// ErrMalformedInput is returned when the startcode scanner exhausts a
	// non-empty input without ever finding a startcode. An empty input is
	// a plain io.EOF instead.
	ErrMalformedInput = errors.New("mts-utils.esstream: no startcode found in input")
)

// ----- pkg/vidtype -----------------------------------------------------------

var (
	// ErrUnknownStreamType is returned when TypeDetector cannot classify the
	// stream and the caller did not force a type.
	ErrUnknownStreamType = errors.New("mts-utils.vidtype: unrecognised elementary stream type")
)

// ----- pkg/pipeline ----------------------------------------------------------

var (
	ErrInvalidConfig = errors.New("mts-utils.pipeline: invalid configuration")

	// ErrBudgetReached signals a clean stop after Config.MaxUnits ES units
	// have been emitted. Not a failure.
	ErrBudgetReached = errors.New("mts-utils.pipeline: max unit budget reached")
)
