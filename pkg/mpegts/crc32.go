// Copyright 2026, mts-utils authors. All rights reserved.
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package mpegts

// crc32MpegTable is the CRC-32/MPEG-2 lookup table: polynomial 0x04C11DB7,
// MSB-first, no input/output reflection. This is a different variant from
// the crc32.IEEE table used elsewhere in the ecosystem (IEEE 802.3's CRC-32
// shares the same polynomial but reflects both input and output), so it is
// built by hand rather than through hash/crc32, which only exposes
// reflected tables.
var crc32MpegTable [256]uint32

const crc32MpegPoly = 0x04C11DB7

func init() {
	for i := 0; i < 256; i++ {
		crc := uint32(i) << 24
		for bit := 0; bit < 8; bit++ {
			if crc&0x80000000 != 0 {
				crc = (crc << 1) ^ crc32MpegPoly
			} else {
				crc <<= 1
			}
		}
		crc32MpegTable[i] = crc
	}
}

// CalcCrc32Mpeg computes the CRC-32/MPEG-2 checksum of buffer, starting
// from crc (callers pass 0xFFFFFFFF for a fresh section). There is no
// final xor.
func CalcCrc32Mpeg(crc uint32, buffer []byte) uint32 {
	for _, b := range buffer {
		crc = (crc << 8) ^ crc32MpegTable[byte(crc>>24)^b]
	}
	return crc
}
