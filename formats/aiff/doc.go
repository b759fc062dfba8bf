// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files of 16, 24 or 32 bits with
// github.com/go-audio/aiff.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // 8-bit or compressed file
//	}
//
// go-audio needs an io.ReadSeeker; other readers are buffered in memory.
package aiff
