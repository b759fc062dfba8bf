// SPDX-License-Identifier: EPL-2.0

// Package beatbot finds the notes in a recording, fingerprints each one
// and groups them into instruments.
//
// The pipeline has three stages, each in its own subpackage:
//
//   - onset: flags candidate note starts on the amplitude envelope with
//     a differential or absolute threshold, then merges candidates that
//     belong to the same attack.
//   - spectrum: takes the real FFT of every note and keeps its strongest
//     bins below a cutoff frequency.
//   - cluster: runs k-means over the per-note fingerprints and labels
//     every note with an instrument.
//
// # Quick Start
//
// Open decodes a file through the format registry and returns a Session:
//
//	s, err := beatbot.Open("drums.wav", beatbot.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	onsets, err := s.Onsets()
//	labels, err := s.InstrumentLabels(ctx, 3)
//
// A Session can also be built from samples already in memory:
//
//	w := &audio.Waveform{Samples: samples, SampleRate: 44100}
//	s, err := beatbot.New(w, cfg)
//
// # Memoization
//
// Onsets are computed once, on the first call to any accessor that
// needs them, and never recomputed for the lifetime of the Session.
// A failure (for example ErrNoOnsetsDetected on a silent recording) is
// cached the same way. Spectral profiles are recomputed on every call;
// instrument labels are cached per instrument count.
//
// # Errors
//
// Analysis failures are reported through sentinel errors that callers
// match with errors.Is:
//
//   - ErrEmptyWaveform: no samples at all.
//   - ErrNoOnsetsDetected: nothing crossed the threshold.
//   - ErrDegenerateSegment: a note too short to transform.
//   - ErrInconsistentFeatureLength: fingerprints of differing length.
//   - ErrInvalidClusterCount: instrument count outside [1, notes].
//
// # Configuration
//
// Every knob lives in Config. DefaultConfig returns the differential
// strategy, a 2000 sample merge resolution, 30 bins below 8 kHz and
// 100 k-means iterations. LoadConfig reads the same fields from JSON.
//
// # Logging
//
// Stage boundaries are logged at debug level through logrus. Set
// Config.Logger to route them; nil uses the logrus standard logger.
package beatbot
