// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/beatbot/utils"
)

// Resampler streams src at a new sample rate using Catmull-Rom cubic
// interpolation. Channel count is preserved. When downsampling, input
// frames pass through a one-pole low-pass first.
type Resampler struct {
	src      Source
	rate     int
	step     float64 // source frames per output frame
	channels int

	// hist[1] and hist[2] bracket the output position; hist[0] and
	// hist[3] are the outer neighbours. Edge frames are duplicated.
	hist   [4][]float32
	real   [4]bool
	primed bool
	pos    float64

	in    []float32
	inPos int
	eof   bool

	lowpass bool
	alpha   float32
	state   []float32
	warm    bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		rate:     dstRate,
		step:     step,
		channels: channels,
		in:       make([]float32, 0, 4096-4096%channels),
		lowpass:  step > 1,
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// nextFrame copies the next source frame into frame. It reports false
// once the source is drained.
func (r *Resampler) nextFrame(frame []float32) (bool, error) {
	empty := 0
	for r.inPos >= len(r.in) {
		if r.eof {
			return false, nil
		}

		buf := r.in[:cap(r.in)]
		n, err := r.src.ReadSamples(buf)
		n -= n % r.channels
		r.in = buf[:n]
		r.inPos = 0

		if errors.Is(err, io.EOF) {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		if n == 0 && !r.eof {
			empty++
			if empty >= maxConsecutiveEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(frame, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.lowpass {
		if !r.warm {
			copy(r.state, frame)
			r.warm = true
		}
		for c := range frame {
			frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
			r.state[c] = frame[c]
		}
	}

	return true, nil
}

// fill loads hist[i] from the source, duplicating hist[i-1] at the end.
func (r *Resampler) fill(i int) error {
	ok, err := r.nextFrame(r.hist[i])
	if err != nil {
		return err
	}
	r.real[i] = ok
	if !ok {
		copy(r.hist[i], r.hist[i-1])
	}
	return nil
}

func (r *Resampler) prime() error {
	ok, err := r.nextFrame(r.hist[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	r.real[1] = true
	copy(r.hist[0], r.hist[1])

	if err := r.fill(2); err != nil {
		return err
	}
	if err := r.fill(3); err != nil {
		return err
	}

	r.primed = true
	return nil
}

func (r *Resampler) advance() error {
	r.hist[0], r.hist[1], r.hist[2], r.hist[3] = r.hist[1], r.hist[2], r.hist[3], r.hist[0]
	r.real[0], r.real[1], r.real[2] = r.real[1], r.real[2], r.real[3]
	return r.fill(3)
}

// ReadSamples produces interleaved samples at the target rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.rate <= 0 || r.step <= 0 {
		return 0, ErrInvalidSampleRate
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.real[1] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
