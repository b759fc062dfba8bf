// SPDX-License-Identifier: EPL-2.0

// Package audio is the waveform-source boundary of beatbot.
//
// Decoders in the formats/ subpackages produce a Source. ReadWaveform
// drains a Source into a Waveform: one channel of integer samples plus a
// sample rate, which is what the onset, spectrum and cluster packages
// consume.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1, 1]. Sources can be
// chained: a Resampler or MonoMixer wraps another Source.
//
// # Reading a Waveform
//
//	src, _ := wav.Decoder{}.Decode(file)
//	w, err := audio.ReadWaveform(src, audio.ReadOptions{Limit: 44100})
//
// Multi-channel input is averaged to mono. Samples are converted back to
// 16-bit scale integers, so 16-bit PCM input is reproduced exactly.
// TargetRate resamples with cubic interpolation before mixing.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("kick_hat.wav")
//
// Lookup fails with ErrUnsupportedFormat when no decoder is registered
// for the file extension.
package audio
