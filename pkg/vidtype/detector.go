// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// Package vidtype implements C4 of the ES-to-TS packetizer: classifying an
// elementary stream as H.262, H.264, AVS, or Unknown from its leading
// startcodes, the way the teacher's pkg/avc and pkg/h2645 mask NAL header
// bytes rather than parsing full bitstream syntax.
package vidtype

import (
	"github.com/1008610010/mts-utils/pkg/base"
	"github.com/1008610010/mts-utils/pkg/esstream"
)

// StreamType is the codec family detected (or forced) for the input ES.
type StreamType int

const (
	Unknown StreamType = iota
	H262
	H264
	AVS
)

func (t StreamType) String() string {
	switch t {
	case H262:
		return "H262"
	case H264:
		return "H264"
	case AVS:
		return "AVS"
	default:
		return "Unknown"
	}
}

// PMT stream_type byte values.
const (
	PMTStreamTypeH262 = 0x02
	PMTStreamTypeH264 = 0x1B
	PMTStreamTypeAVS  = 0x42
)

// PMTStreamType maps t to the byte written into the PMT elementary stream
// entry. Unknown has no valid mapping.
func (t StreamType) PMTStreamType() (byte, error) {
	switch t {
	case H262:
		return PMTStreamTypeH262, nil
	case H264:
		return PMTStreamTypeH264, nil
	case AVS:
		return PMTStreamTypeAVS, nil
	default:
		return 0, base.ErrUnknownStreamType
	}
}

// Startcode bytes with unambiguous codec identity.
const (
	h262SequenceHeaderCode  = 0xB3 // H.262 sequence_header_code
	avsVideoSequenceStartCd = 0xB0 // AVS video_sequence_start_code
)

// Prominent early H.264 NAL unit types: slice, IDR slice, SPS, PPS, AUD.
var h264EarlyNalTypes = map[uint8]bool{1: true, 5: true, 7: true, 8: true, 9: true}

// maxPeekStartcodes/maxPeekBytes bound the detection window: peek at most
// 16 startcodes or 4 KiB, whichever comes first, and classify from
// whatever was found within that budget.
const (
	maxPeekStartcodes = 16
	maxPeekBytes      = 4096
)

// Detector classifies a fresh, peekable ByteSource.
type Detector struct {
	logger base.Logger
}

// NewDetector builds a Detector. logger is used only to report what was
// detected, never as a source of process-wide state.
func NewDetector(logger base.Logger) *Detector {
	return &Detector{logger: logger}
}

// Detect peeks up to maxPeekBytes of src — without consuming any of it —
// and classifies the stream from the startcode bytes found there.
//
// Detect must be called before any bytes are consumed from src (i.e.
// before the pipeline's esstream.Builder starts reading), since it relies
// entirely on Peek. On a non-seekable source (stdin, a TCP connection)
// Peek still works because ByteSource buffers ahead, but the caller may
// choose to skip detection entirely and force a type instead.
func (d *Detector) Detect(src *esstream.ByteSource) (StreamType, error) {
	window, _ := src.Peek(maxPeekBytes) // a short read near EOF is fine, we just see fewer startcodes
	scs := scanStartcodes(window, maxPeekStartcodes)

	if len(scs) == 0 {
		d.logger.Warnf("vidtype: no startcode found in first %d byte(s), cannot classify", len(window))
		return Unknown, nil
	}

	for _, sc := range scs {
		if sc == avsVideoSequenceStartCd {
			d.logger.Infof("vidtype: detected AVS (video_sequence_start_code 0x%02X seen)", sc)
			return AVS, nil
		}
	}

	for _, sc := range scs {
		if sc == h262SequenceHeaderCode {
			d.logger.Infof("vidtype: detected H262 (sequence_header_code 0x%02X seen)", sc)
			return H262, nil
		}
	}

	first := scs[0]
	// A valid H.264 NAL header byte always has forbidden_zero_bit clear.
	if first < 0x80 && h264EarlyNalTypes[first&0x1F] {
		d.logger.Infof("vidtype: detected H264 (first NAL type %d)", first&0x1F)
		return H264, nil
	}

	// Remaining H.262 picture_start_code (0x00) / slice_start_code
	// (0x01-0xAF) range.
	if first <= 0xAF {
		d.logger.Infof("vidtype: detected H262 (first startcode 0x%02X in picture/slice range)", first)
		return H262, nil
	}

	d.logger.Warnf("vidtype: first startcode 0x%02X matched no known convention", first)
	return Unknown, nil
}

// scanStartcodes scans a plain byte slice (not a ByteSource — this never
// consumes anything) for up to max startcode identifier bytes, tolerating
// runs of leading zeros the same way esstream.StartcodeScanner does.
func scanStartcodes(window []byte, max int) []byte {
	var scs []byte
	zeros := 0
	for i := 0; i < len(window) && len(scs) < max; i++ {
		b := window[i]
		switch {
		case b == 0x00:
			zeros++
		case b == 0x01 && zeros >= 2:
			if i+1 < len(window) {
				scs = append(scs, window[i+1])
				i++
			}
			zeros = 0
		default:
			zeros = 0
		}
	}
	return scs
}
