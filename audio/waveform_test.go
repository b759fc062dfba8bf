// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/beatbot/internal/audiotest"
)

func TestReadWaveform_PreservesIntegerSamples(t *testing.T) {
	t.Parallel()

	samples := []int{0, 1, -1, 32767, -32768, 1200, -7}
	w, err := ReadWaveform(audiotest.NewSamplesSource(22050, samples), ReadOptions{BufferSize: 3})
	if err != nil {
		t.Fatalf("ReadWaveform() error = %v", err)
	}

	if w.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", w.SampleRate)
	}
	if !slices.Equal(w.Samples, samples) {
		t.Errorf("Samples = %v, want %v", w.Samples, samples)
	}
}

func TestReadWaveform_Limit(t *testing.T) {
	t.Parallel()

	w, err := ReadWaveform(audiotest.NewSineSource(8000, 1, 8000, 50), ReadOptions{Limit: 1000, BufferSize: 300})
	if err != nil {
		t.Fatalf("ReadWaveform() error = %v", err)
	}
	if w.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", w.Len())
	}
}

func TestReadWaveform_MixesToMono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 50, func(_ int, ch int) float32 {
		if ch == 0 {
			return 0.5
		}
		return 0
	})

	w, err := ReadWaveform(src, ReadOptions{})
	if err != nil {
		t.Fatalf("ReadWaveform() error = %v", err)
	}
	if w.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", w.Len())
	}
	for i, s := range w.Samples {
		if s != 8192 {
			t.Fatalf("Samples[%d] = %d, want 8192", i, s)
		}
	}
}

func TestReadWaveform_Resamples(t *testing.T) {
	t.Parallel()

	w, err := ReadWaveform(audiotest.NewSineSource(44100, 1, 44100, 100), ReadOptions{TargetRate: 8000})
	if err != nil {
		t.Fatalf("ReadWaveform() error = %v", err)
	}
	if w.SampleRate != 8000 || w.Len() != 8000 {
		t.Errorf("got %d samples at %d Hz, want 8000 at 8000 Hz", w.Len(), w.SampleRate)
	}
	if w.Duration() != 1 {
		t.Errorf("Duration() = %v, want 1", w.Duration())
	}
}

func TestReadWaveform_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     Source
		opts    ReadOptions
		wantErr error
	}{
		{name: "negative limit", src: audiotest.NewSilentSource(8000, 1, 1), opts: ReadOptions{Limit: -1}, wantErr: ErrInvalidSampleLimit},
		{name: "negative rate", src: audiotest.NewSilentSource(8000, 1, 1), opts: ReadOptions{TargetRate: -8000}, wantErr: ErrInvalidSampleRate},
		{name: "zero source rate", src: audiotest.NewSilentSource(0, 1, 1), wantErr: ErrInvalidSampleRate},
		{name: "no channels", src: audiotest.NewSilentSource(8000, 0, 1), wantErr: ErrNoChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ReadWaveform(tt.src, tt.opts); !errors.Is(err, tt.wantErr) {
				t.Errorf("ReadWaveform() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWaveform_Truncate(t *testing.T) {
	t.Parallel()

	w := &Waveform{Samples: []int{1, 2, 3, 4}, SampleRate: 4}
	if got := w.Truncate(2); got.Len() != 2 || got.SampleRate != 4 {
		t.Errorf("Truncate(2) = %+v", got)
	}
	if got := w.Truncate(0); got != w {
		t.Error("Truncate(0) should return the waveform unchanged")
	}
	if got := w.Truncate(10); got != w {
		t.Error("Truncate beyond length should return the waveform unchanged")
	}
}
