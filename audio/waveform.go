// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/beatbot/utils"
)

const maxConsecutiveEmptyReads = 100

// Waveform is a single channel of integer PCM samples at 16-bit scale.
// It is treated as read-only once built.
type Waveform struct {
	Samples    []int
	SampleRate int
}

// Len returns the number of samples.
func (w *Waveform) Len() int { return len(w.Samples) }

// Duration returns the length of the waveform in seconds.
func (w *Waveform) Duration() float64 {
	if w.SampleRate <= 0 {
		return 0
	}
	return float64(len(w.Samples)) / float64(w.SampleRate)
}

// Truncate returns a view of at most limit samples. A limit of 0 keeps
// every sample. The samples are shared, not copied.
func (w *Waveform) Truncate(limit int) *Waveform {
	if limit <= 0 || limit >= len(w.Samples) {
		return w
	}
	return &Waveform{Samples: w.Samples[:limit:limit], SampleRate: w.SampleRate}
}

// ReadOptions control how ReadWaveform collects a source.
type ReadOptions struct {
	// TargetRate resamples the source first. 0 keeps the native rate.
	TargetRate int
	// Limit stops reading after this many samples. 0 reads everything.
	Limit int
	// BufferSize is the read chunk in samples. 0 uses the source's BufSize.
	BufferSize int
}

// ReadWaveform drains src into a mono Waveform.
//
// The pipeline is: optional Resampler -> MonoMixer -> int conversion.
// Multi-channel sources are averaged into one channel.
func ReadWaveform(src Source, opts ReadOptions) (*Waveform, error) {
	if opts.Limit < 0 {
		return nil, ErrInvalidSampleLimit
	}
	if opts.TargetRate < 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if src.Channels() < 1 {
		return nil, ErrNoChannels
	}

	var stream Source = src
	if opts.TargetRate > 0 && opts.TargetRate != src.SampleRate() {
		stream = NewResampler(stream, opts.TargetRate)
	}
	mono := NewMonoMixer(stream)

	bufSize := opts.BufferSize
	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	if bufSize <= 0 {
		bufSize = 4096
	}
	buf := make([]float32, bufSize)

	w := &Waveform{SampleRate: mono.SampleRate()}
	if opts.Limit > 0 {
		w.Samples = make([]int, 0, opts.Limit)
	}

	empty := 0
	for {
		n, err := mono.ReadSamples(buf)
		if n == 0 && err == nil {
			empty++
			if empty >= maxConsecutiveEmptyReads {
				return nil, io.ErrNoProgress
			}
			continue
		}
		empty = 0

		for i := range n {
			if opts.Limit > 0 && len(w.Samples) >= opts.Limit {
				return w, nil
			}
			w.Samples = append(w.Samples, utils.Float32ToSample(buf[i]))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if opts.Limit > 0 && len(w.Samples) >= opts.Limit {
			break
		}
	}

	return w, nil
}
