// SPDX-License-Identifier: EPL-2.0

// Package spectrum computes a compact spectral fingerprint for every note
// of a waveform.
//
// A note is the span between one onset and the next (see onset.Bounds).
// For each note the Analyzer takes the magnitude spectrum of a real FFT,
// drops the bins at or above Options.MaxFrequency and keeps the
// Options.TopK strongest bins as a Profile:
//
//	a, err := spectrum.New(spectrum.DefaultOptions())
//	profiles, err := a.Analyze(ctx, samples, 44100, onsets)
//
// Two FFT backends are available: gonum's dsp/fourier (the default) and
// mjibson/go-dsp. Both produce the same bins to within floating point
// error. An optional Hann or Hamming window may be applied to each note
// before the transform.
//
// Notes are analyzed concurrently, bounded by Options.Workers. Profiles
// are always returned in onset order.
package spectrum
