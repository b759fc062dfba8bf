// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/beatbot/audio"
)

// pcmReader simulates gomp3.Decoder, handing out at most chunk bytes per Read.
type pcmReader struct {
	rate  int
	data  []byte
	chunk int
	err   error
}

func newPCMReader(rate, chunk int, samples ...int16) *pcmReader {
	data := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return &pcmReader{rate: rate, data: data, chunk: chunk}
}

func (p *pcmReader) SampleRate() int { return p.rate }

func (p *pcmReader) Read(buf []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	if len(p.data) == 0 {
		return 0, io.EOF
	}
	n := copy(buf[:min(len(buf), p.chunk)], p.data)
	p.data = p.data[n:]
	return n, nil
}

func TestSource_ReadsAcrossShortReads(t *testing.T) {
	t.Parallel()

	s := &source{dec: newPCMReader(44100, 3, 16384, -16384, 0, 8192), sampleRate: 44100}

	buf := make([]float32, 4)
	n, err := s.ReadSamples(buf)
	if err != nil || n != 4 {
		t.Fatalf("ReadSamples() = %d, %v, want 4, nil", n, err)
	}

	want := []float32{0.5, -0.5, 0, 0.25}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}

	if n, err := s.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() at end = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_PartialTailIsEOF(t *testing.T) {
	t.Parallel()

	s := &source{dec: newPCMReader(44100, 64, 1, 2, 3), sampleRate: 44100}
	n, err := s.ReadSamples(make([]float32, 8))
	if n != 3 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = %d, %v, want 3, io.EOF", n, err)
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt frame")
	s := &source{dec: &pcmReader{err: boom}}
	if _, err := s.ReadSamples(make([]float32, 8)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	var src audio.Source = &source{dec: newPCMReader(32000, 8), sampleRate: 32000, buf: make([]byte, 8192)}
	if src.SampleRate() != 32000 || src.Channels() != 2 || src.BufSize() != 4096 {
		t.Errorf("metadata = %d Hz, %d ch, buf %d", src.SampleRate(), src.Channels(), src.BufSize())
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("This is not MP3 data"))); err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}
