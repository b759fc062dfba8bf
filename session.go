// SPDX-License-Identifier: EPL-2.0

package beatbot

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ik5/beatbot/audio"
	"github.com/ik5/beatbot/cluster"
	"github.com/ik5/beatbot/onset"
	"github.com/ik5/beatbot/spectrum"
)

// Session analyzes one waveform. Its onsets are computed once and then
// shared by every accessor. A Session is safe for concurrent use.
type Session struct {
	wave     *audio.Waveform
	cfg      Config
	strategy onset.Strategy
	analyzer *spectrum.Analyzer
	log      logrus.FieldLogger

	mu        sync.Mutex
	populated bool
	envelope  []float64
	threshold float64
	thrErr    error
	onsets    []int
	err       error

	labelsMu sync.Mutex
	labels   map[int][]int
}

// New starts a session over w. The waveform is read, never modified;
// cfg.SampleLimit restricts the view of it.
func New(w *audio.Waveform, cfg Config) (*Session, error) {
	if w == nil {
		return nil, ErrNilWaveform
	}
	if w.SampleRate <= 0 {
		return nil, fmt.Errorf("%d: %w", w.SampleRate, audio.ErrInvalidSampleRate)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	strategy, err := onset.ParseStrategy(string(cfg.Strategy))
	if err != nil {
		return nil, err
	}
	analyzer, err := spectrum.New(cfg.spectrumOptions())
	if err != nil {
		return nil, err
	}

	return &Session{
		wave:     w.Truncate(cfg.SampleLimit),
		cfg:      cfg,
		strategy: strategy,
		analyzer: analyzer,
		log:      cfg.logger(),
		labels:   make(map[int][]int),
	}, nil
}

// Waveform returns the analyzed waveform, after SampleLimit.
func (s *Session) Waveform() *audio.Waveform { return s.wave }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// ensureOnsets runs detection and merging on first use and returns the
// cached outcome afterwards, failures included.
func (s *Session) ensureOnsets() ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.populated {
		s.computeOnsets()
		s.populated = true
	}
	return s.onsets, s.err
}

func (s *Session) computeOnsets() {
	s.envelope = onset.Envelope(s.wave.Samples)

	s.threshold, s.thrErr = onset.Threshold(s.envelope, s.strategy, s.cfg.onsetParams())
	if s.thrErr != nil {
		s.err = s.thrErr
		return
	}

	candidates, err := onset.Detect(s.envelope, s.strategy, s.cfg.onsetParams())
	if err != nil {
		s.err = err
		return
	}
	s.onsets, s.err = onset.Merge(candidates, s.cfg.Resolution)

	s.log.WithFields(logrus.Fields{
		"strategy":   s.strategy,
		"threshold":  s.threshold,
		"candidates": len(candidates),
		"onsets":     len(s.onsets),
		"resolution": s.cfg.Resolution,
	}).Debug("onsets detected")
}

// Onsets returns the note start indices, strictly increasing.
func (s *Session) Onsets() ([]int, error) {
	onsets, err := s.ensureOnsets()
	if err != nil {
		return nil, err
	}
	return slices.Clone(onsets), nil
}

// Envelope returns the absolute amplitude of every sample.
func (s *Session) Envelope() []float64 {
	s.ensureOnsets()

	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.envelope)
}

// Threshold returns the value the onset detector compared against.
// It is available even when no onset crossed it.
func (s *Session) Threshold() (float64, error) {
	s.ensureOnsets()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.threshold, s.thrErr
}

// Notes returns the sample range of every note.
func (s *Session) Notes() ([]onset.Segment, error) {
	onsets, err := s.ensureOnsets()
	if err != nil {
		return nil, err
	}
	return onset.Segments(onsets, s.wave.Len()), nil
}

// SpectralProfiles fingerprints every note, aligned with Onsets.
func (s *Session) SpectralProfiles(ctx context.Context) ([]spectrum.Profile, error) {
	onsets, err := s.ensureOnsets()
	if err != nil {
		return nil, err
	}
	return s.analyzer.Analyze(ctx, s.wave.Samples, s.wave.SampleRate, onsets)
}

// InstrumentLabels assigns each note one of n instruments, aligned with
// Onsets. Every label in [0, n) is used.
func (s *Session) InstrumentLabels(ctx context.Context, n int) ([]int, error) {
	if labels, ok := s.cachedLabels(n); ok {
		return labels, nil
	}

	profiles, err := s.SpectralProfiles(ctx)
	if err != nil {
		return nil, err
	}
	return s.labelsFor(n, profiles)
}

// InstrumentCount returns how many distinct instruments the n-way
// clustering produced.
func (s *Session) InstrumentCount(ctx context.Context, n int) (int, error) {
	labels, err := s.InstrumentLabels(ctx, n)
	if err != nil {
		return 0, err
	}
	return cluster.Distinct(labels), nil
}

func (s *Session) cachedLabels(n int) ([]int, bool) {
	s.labelsMu.Lock()
	defer s.labelsMu.Unlock()

	labels, ok := s.labels[n]
	return slices.Clone(labels), ok
}

func (s *Session) labelsFor(n int, profiles []spectrum.Profile) ([]int, error) {
	s.labelsMu.Lock()
	defer s.labelsMu.Unlock()

	if labels, ok := s.labels[n]; ok {
		return slices.Clone(labels), nil
	}

	res, err := cluster.Instruments(profiles, s.cfg.clusterOptions(n))
	if err != nil {
		return nil, fmt.Errorf("instruments: %w", err)
	}
	s.labels[n] = res.Labels
	return slices.Clone(res.Labels), nil
}
