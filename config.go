// SPDX-License-Identifier: EPL-2.0

package beatbot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ik5/beatbot/audio"
	"github.com/ik5/beatbot/cluster"
	"github.com/ik5/beatbot/onset"
	"github.com/ik5/beatbot/spectrum"
)

const (
	DefaultResolution  = 2000
	DefaultInstruments = 2
)

// Config holds every tunable of the pipeline.
type Config struct {
	// Strategy selects the onset detector.
	Strategy onset.Strategy `json:"strategy"`
	// Divisor sets threshold = min + (max-min)/Divisor. Zero selects the
	// strategy default (6 differential, 3 absolute).
	Divisor float64 `json:"divisor,omitempty"`
	// MaxFraction, when positive, makes the absolute strategy use
	// MaxFraction*max as its threshold.
	MaxFraction float64 `json:"max_fraction,omitempty"`
	// Resolution is the merge distance in samples: onsets closer than
	// this belong to the same event.
	Resolution int `json:"resolution"`

	TopK         int                `json:"top_k"`
	MaxFrequency float64            `json:"max_frequency"`
	Transform    spectrum.Transform `json:"transform,omitempty"`
	Window       spectrum.Window    `json:"window,omitempty"`

	// Instruments is the cluster count used by Report and the CLI when
	// the caller does not pass one. Zero skips clustering in reports.
	Instruments   int    `json:"instruments"`
	MaxIterations int    `json:"max_iterations"`
	Seed          uint64 `json:"seed"`

	// Workers bounds concurrent note analyses; 0 uses GOMAXPROCS.
	Workers int `json:"workers,omitempty"`
	// SampleLimit truncates the waveform before analysis; 0 keeps it all.
	SampleLimit int `json:"sample_limit,omitempty"`
	// TargetRate resamples decoded audio; 0 keeps the native rate.
	TargetRate int `json:"target_rate,omitempty"`

	Logger logrus.FieldLogger `json:"-"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Strategy:      onset.Differential,
		Resolution:    DefaultResolution,
		TopK:          spectrum.DefaultTopK,
		MaxFrequency:  spectrum.DefaultMaxFrequency,
		Transform:     spectrum.Gonum,
		Window:        spectrum.NoWindow,
		Instruments:   DefaultInstruments,
		MaxIterations: cluster.DefaultMaxIterations,
		Seed:          cluster.DefaultSeed,
	}
}

// LoadConfig reads a JSON config file. Fields absent from the file keep
// their DefaultConfig values; unknown fields are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if _, err := onset.ParseStrategy(string(c.Strategy)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.onsetParams().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Resolution < 0 {
		return fmt.Errorf("config: resolution %d: %w", c.Resolution, onset.ErrInvalidResolution)
	}
	if _, err := spectrum.New(c.spectrumOptions()); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Instruments < 0 {
		return fmt.Errorf("config: %d: %w", c.Instruments, ErrInvalidInstruments)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("config: %d: %w", c.MaxIterations, cluster.ErrInvalidMaxIterations)
	}
	if c.SampleLimit < 0 {
		return fmt.Errorf("config: %d: %w", c.SampleLimit, audio.ErrInvalidSampleLimit)
	}
	if c.TargetRate < 0 {
		return fmt.Errorf("config: target rate %d: %w", c.TargetRate, audio.ErrInvalidSampleRate)
	}
	return nil
}

func (c Config) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}

func (c Config) onsetParams() onset.Params {
	return onset.Params{Divisor: c.Divisor, MaxFraction: c.MaxFraction}
}

func (c Config) spectrumOptions() spectrum.Options {
	return spectrum.Options{
		TopK:         c.TopK,
		MaxFrequency: c.MaxFrequency,
		Transform:    c.Transform,
		Window:       c.Window,
		Workers:      c.Workers,
		Logger:       c.logger(),
	}
}

func (c Config) clusterOptions(k int) cluster.Options {
	return cluster.Options{
		K:             k,
		MaxIterations: c.MaxIterations,
		Seed:          c.Seed,
		Logger:        c.logger(),
	}
}
