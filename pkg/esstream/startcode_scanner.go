// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package esstream

// StartcodeScanner finds 00 00 01 <sc> prefixes over a ByteSource. It
// tolerates any number of leading zero bytes before the 01 — per MPEG
// convention "00 00 00 ... 00 01" is still a valid startcode prefix — by
// treating the whole run of zeros immediately preceding a 01 as belonging
// to the prefix, not to the preceding unit's payload.
type StartcodeScanner struct {
	src *ByteSource
}

// NewStartcodeScanner builds a scanner reading from src.
func NewStartcodeScanner(src *ByteSource) *StartcodeScanner {
	return &StartcodeScanner{src: src}
}

// Next scans forward and returns the content bytes skipped before the next
// startcode prefix (i.e. not part of any 00 00 (00)* 01 run) together with
// the one-byte startcode identifier that immediately follows the prefix.
//
// It consumes through the startcode prefix and the identifier byte, so the
// next call to Next resumes scanning for the startcode after that.
//
// On EOF, it returns whatever trailing content bytes were read (which may
// be empty) and io.EOF; any pending run of zeros that never resolved into
// a startcode is flushed into skipped as ordinary content, since no prefix
// materialized — callers must not silently lose those bytes.
func (s *StartcodeScanner) Next() (skipped []byte, startcodeByte byte, err error) {
	var zeros int
	for {
		b, rerr := s.src.ReadByte()
		if rerr != nil {
			for ; zeros > 0; zeros-- {
				skipped = append(skipped, 0x00)
			}
			return skipped, 0, rerr
		}

		if b == 0x00 {
			zeros++
			continue
		}

		if b == 0x01 && zeros >= 2 {
			sc, rerr := s.src.ReadByte()
			if rerr != nil {
				// A dangling "00 00 01" with nothing after it at EOF: there
				// is no startcode identifier to report, so the whole
				// sequence (zeros and the 01) is ordinary content, not a
				// startcode that happens to be missing its identifier byte.
				for i := 0; i < zeros; i++ {
					skipped = append(skipped, 0x00)
				}
				skipped = append(skipped, 0x01)
				return skipped, 0, rerr
			}
			return skipped, sc, nil
		}

		// zeros (if any — there were fewer than 2 of them, or the byte
		// after them wasn't 01) are ordinary content, followed by b.
		for ; zeros > 0; zeros-- {
			skipped = append(skipped, 0x00)
		}
		skipped = append(skipped, b)
	}
}
