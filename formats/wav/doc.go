// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes WAV files.
//
// Decoding is done with github.com/go-audio/wav, so files with extra
// chunks (LIST, fact, ...) and 16, 24 or 32 bit integer PCM are
// accepted. The decoder returns an audio.Source with float32 samples in
// [-1.0, 1.0].
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// WriteWAV16 and WriteSamples produce canonical mono 16-bit PCM files;
// the beatbot command uses WriteSamples to export note slices.
package wav
