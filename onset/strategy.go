// SPDX-License-Identifier: EPL-2.0

package onset

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Strategy names an onset detection rule.
type Strategy string

const (
	Differential Strategy = "differential"
	Absolute     Strategy = "absolute"
)

// Strategies lists every supported strategy.
func Strategies() []Strategy {
	return []Strategy{Differential, Absolute}
}

// ParseStrategy resolves a strategy name, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Strategies(), s) {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
	return s, nil
}

func (s Strategy) String() string { return string(s) }

// DefaultDivisor is the divisor used when Params.Divisor is zero.
func (s Strategy) DefaultDivisor() float64 {
	if s == Absolute {
		return 3
	}
	return 6
}

// Params tune a strategy's threshold.
type Params struct {
	// Divisor splits the envelope range: threshold = min + (max-min)/Divisor.
	// Zero selects the strategy default.
	Divisor float64 `json:"divisor,omitempty"`
	// MaxFraction, when positive, makes Absolute use MaxFraction*max
	// as its threshold instead. Ignored by Differential.
	MaxFraction float64 `json:"max_fraction,omitempty"`
}

// Validate checks the divisor and fraction ranges.
func (p Params) Validate() error {
	if p.Divisor < 0 || math.IsNaN(p.Divisor) || math.IsInf(p.Divisor, 0) {
		return fmt.Errorf("%v: %w", p.Divisor, ErrInvalidDivisor)
	}
	if p.MaxFraction < 0 || p.MaxFraction > 1 || math.IsNaN(p.MaxFraction) {
		return fmt.Errorf("%v: %w", p.MaxFraction, ErrInvalidFraction)
	}
	return nil
}

// detectFunc flags candidate indices of env against threshold.
type detectFunc func(env []float64, threshold float64) []int

var detectors = map[Strategy]detectFunc{
	Differential: rising,
	Absolute:     above,
}

// rising flags i where the envelope climbs by more than threshold
// between i and i+1.
func rising(env []float64, threshold float64) []int {
	var out []int
	for i := 0; i+1 < len(env); i++ {
		if env[i+1]-env[i] > threshold {
			out = append(out, i)
		}
	}
	return out
}

// above flags i where the envelope itself exceeds threshold.
func above(env []float64, threshold float64) []int {
	var out []int
	for i, v := range env {
		if v > threshold {
			out = append(out, i)
		}
	}
	return out
}

// Threshold returns the comparison value strategy s applies to env.
func Threshold(env []float64, s Strategy, p Params) (float64, error) {
	if len(env) == 0 {
		return 0, ErrEmptyWaveform
	}
	if _, ok := detectors[s]; !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownStrategy)
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	lo, hi := floats.Min(env), floats.Max(env)
	if s == Absolute && p.MaxFraction > 0 {
		return p.MaxFraction * hi, nil
	}

	divisor := p.Divisor
	if divisor == 0 {
		divisor = s.DefaultDivisor()
	}
	return lo + (hi-lo)/divisor, nil
}

// Detect returns the raw candidate indices, ascending, for env.
//
// An envelope with no contrast (every value equal) yields no candidates;
// the threshold is meaningless there.
func Detect(env []float64, s Strategy, p Params) ([]int, error) {
	threshold, err := Threshold(env, s, p)
	if err != nil {
		return nil, err
	}

	if floats.Min(env) == floats.Max(env) {
		return nil, nil
	}

	return detectors[s](env, threshold), nil
}
