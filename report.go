// SPDX-License-Identifier: EPL-2.0

package beatbot

import (
	"context"

	"github.com/ik5/beatbot/onset"
	"github.com/ik5/beatbot/spectrum"
)

// Report is everything a renderer needs to draw the analysis.
type Report struct {
	SampleRate int                `json:"sample_rate"`
	Samples    int                `json:"samples"`
	Duration   float64            `json:"duration_seconds"`
	Strategy   onset.Strategy     `json:"strategy"`
	Threshold  float64            `json:"threshold"`
	Onsets     []int              `json:"onsets"`
	Notes      []onset.Segment    `json:"notes"`
	Profiles   []spectrum.Profile `json:"profiles"`

	// Labels and Instruments are empty when clustering was skipped.
	Labels      []int `json:"labels,omitempty"`
	Instruments int   `json:"instruments,omitempty"`
}

// Report runs the whole pipeline. n is the instrument count; 0 skips
// clustering.
func (s *Session) Report(ctx context.Context, n int) (*Report, error) {
	onsets, err := s.Onsets()
	if err != nil {
		return nil, err
	}
	notes, err := s.Notes()
	if err != nil {
		return nil, err
	}
	threshold, _ := s.Threshold()

	profiles, err := s.SpectralProfiles(ctx)
	if err != nil {
		return nil, err
	}

	r := &Report{
		SampleRate: s.wave.SampleRate,
		Samples:    s.wave.Len(),
		Duration:   s.wave.Duration(),
		Strategy:   s.strategy,
		Threshold:  threshold,
		Onsets:     onsets,
		Notes:      notes,
		Profiles:   profiles,
	}

	if n > 0 {
		labels, err := s.labelsFor(n, profiles)
		if err != nil {
			return nil, err
		}
		r.Labels = labels
		r.Instruments = n
	}

	return r, nil
}
