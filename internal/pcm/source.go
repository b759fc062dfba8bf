// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer decoders to audio.Source.
package pcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

const defaultBufSize = 4096

var ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")

// Reader is the part of a go-audio decoder a Source pulls from.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// FullScale returns the divisor mapping a signed sample of bitDepth bits
// onto [-1, 1).
func FullScale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 16, 24, 32:
		return float32(uint64(1) << (bitDepth - 1)), nil
	}
	return 0, fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
}

// Source serves interleaved float samples from a Reader. A short read
// from the Reader marks the end of the stream.
type Source struct {
	r      Reader
	format *goaudio.Format
	scale  float32
	name   string
	buf    *goaudio.IntBuffer
}

// NewSource wraps r. name prefixes read errors.
func NewSource(r Reader, format *goaudio.Format, bitDepth int, name string) (*Source, error) {
	scale, err := FullScale(bitDepth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Source{r: r, format: format, scale: scale, name: name}, nil
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return defaultBufSize
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{Data: make([]int, len(dst)), Format: s.format}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.r.PCMBuffer(s.buf)
	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) / s.scale
	}

	switch {
	case err != nil && !errors.Is(err, io.EOF):
		return n, fmt.Errorf("%s: %w", s.name, err)
	case err != nil || n < len(dst):
		return n, io.EOF
	}
	return n, nil
}
