// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

type stubReader struct {
	value int
	n     int
	err   error
}

func (s stubReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	for i := range s.n {
		buf.Data[i] = s.value
	}
	return s.n, s.err
}

// queueReader hands out samples a chunk at a time, then io.EOF.
type queueReader struct {
	samples []int
}

func (q *queueReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if len(q.samples) == 0 {
		return 0, io.EOF
	}
	n := copy(buf.Data, q.samples)
	q.samples = q.samples[n:]
	return n, nil
}

var mono8k = &goaudio.Format{NumChannels: 1, SampleRate: 8000}

func TestFullScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits int
		want float32
	}{
		{bits: 16, want: 32768},
		{bits: 24, want: 8388608},
		{bits: 32, want: 2147483648},
	}
	for _, tt := range tests {
		if got, err := FullScale(tt.bits); err != nil || got != tt.want {
			t.Errorf("FullScale(%d) = %v, %v, want %v", tt.bits, got, err, tt.want)
		}
	}
	for _, bits := range []int{0, 8, 12, 64} {
		if _, err := FullScale(bits); !errors.Is(err, ErrUnsupportedBitDepth) {
			t.Errorf("FullScale(%d) error = %v, want ErrUnsupportedBitDepth", bits, err)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	s, err := NewSource(&queueReader{samples: []int{16384, -16384, 0, 32767, -32768}}, mono8k, 16, "test")
	if err != nil {
		t.Fatal(err)
	}
	if s.SampleRate() != 8000 || s.Channels() != 1 || s.BufSize() != defaultBufSize {
		t.Errorf("metadata = %d Hz, %d ch, %d buf", s.SampleRate(), s.Channels(), s.BufSize())
	}

	buf := make([]float32, 3)
	n, err := s.ReadSamples(buf)
	if err != nil || n != 3 {
		t.Fatalf("ReadSamples() = %d, %v, want 3, nil", n, err)
	}
	if buf[0] != 0.5 || buf[1] != -0.5 || buf[2] != 0 {
		t.Errorf("buf = %v", buf)
	}

	n, err = s.ReadSamples(buf)
	if n != 2 || !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() = %d, %v, want 2, io.EOF", n, err)
	}
	if buf[1] != -1 {
		t.Errorf("buf[1] = %v, want -1", buf[1])
	}
}

func TestSource_ReadErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tests := []struct {
		name    string
		reader  stubReader
		wantN   int
		wantErr error
	}{
		{name: "short read is end of stream", reader: stubReader{value: 16384, n: 2}, wantN: 2, wantErr: io.EOF},
		{name: "empty read is end of stream", reader: stubReader{}, wantN: 0, wantErr: io.EOF},
		{name: "eof with data", reader: stubReader{value: 16384, n: 4, err: io.EOF}, wantN: 4, wantErr: io.EOF},
		{name: "decoder error", reader: stubReader{err: boom}, wantN: 0, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := NewSource(tt.reader, mono8k, 16, "test")
			if err != nil {
				t.Fatal(err)
			}
			buf := make([]float32, 4)
			n, err := s.ReadSamples(buf)
			if n != tt.wantN || !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReadSamples() = %d, %v, want %d, %v", n, err, tt.wantN, tt.wantErr)
			}
			if n > 0 && buf[0] != 0.5 {
				t.Errorf("buf[0] = %v, want 0.5", buf[0])
			}
		})
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	s, err := NewSource(&queueReader{samples: []int{1}}, mono8k, 24, "test")
	if err != nil {
		t.Fatal(err)
	}
	if n, err := s.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v", n, err)
	}
}

func TestNewSource_BitDepth(t *testing.T) {
	t.Parallel()

	if _, err := NewSource(&queueReader{}, mono8k, 8, "aiff"); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("NewSource(8 bits) error = %v, want ErrUnsupportedBitDepth", err)
	}
}
