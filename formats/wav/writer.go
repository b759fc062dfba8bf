// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	headerSize = 44
	chunkSize  = 8192 // samples per write
)

// header builds the canonical 44-byte header of a mono 16-bit PCM file.
func header(sampleRate, numSamples int) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
		blockAlign    = channels * bitsPerSample / 8
	)
	dataSize := uint32(numSamples * blockAlign)

	h := make([]byte, headerSize)
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], 36+dataSize)
	copy(h[8:12], "WAVE")
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], formatPCM)
	binary.LittleEndian.PutUint16(h[22:24], channels)
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(h[32:34], blockAlign)
	binary.LittleEndian.PutUint16(h[34:36], bitsPerSample)
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	return write(w, sampleRate, len(samples), func(i int) int16 { return samples[i] })
}

// WriteSamples writes integer samples (16-bit scale) as a mono 16-bit PCM
// WAV. Values outside the int16 range are clipped. It is used to export
// note segments of an audio.Waveform.
func WriteSamples(w io.Writer, sampleRate int, samples []int) error {
	return write(w, sampleRate, len(samples), func(i int) int16 {
		return int16(max(math.MinInt16, min(math.MaxInt16, samples[i])))
	})
}

func write(w io.Writer, sampleRate, n int, at func(int) int16) error {
	if _, err := w.Write(header(sampleRate, n)); err != nil {
		return fmt.Errorf("%w", err)
	}

	buf := make([]byte, 2*min(n, chunkSize))
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		chunk := buf[:2*(end-start)]
		for i := start; i < end; i++ {
			binary.LittleEndian.PutUint16(chunk[2*(i-start):], uint16(at(i)))
		}
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
