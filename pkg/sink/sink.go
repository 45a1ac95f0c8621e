// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// Package sink implements the core's output transport abstraction: the
// pipeline consumes an opaque byte sink, never a concrete
// file/stdout/TCP type.
package sink

import "io"

// Sink is the capability the core's TSPacketizer writes TS packets
// through. It embeds io.Writer so any Sink value can be handed directly
// to mpegts.NewTSPacketizer, plus an explicit Close for releasing the
// underlying file handle or connection.
type Sink interface {
	io.Writer
	io.Closer
}
