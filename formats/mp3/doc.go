// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo 16-bit PCM, so the returned
// audio.Source reports two channels; audio.ReadWaveform mixes them down
// before analysis.
//
//	src, err := mp3.Decoder{}.Decode(file)
package mp3
