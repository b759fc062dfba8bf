// SPDX-License-Identifier: EPL-2.0

package onset

import "errors"

var (
	// ErrEmptyWaveform is returned when there are no samples to scan.
	ErrEmptyWaveform = errors.New("waveform has no samples")
	// ErrNoOnsetsDetected is returned when nothing crossed the threshold.
	ErrNoOnsetsDetected = errors.New("no onsets detected")

	ErrUnknownStrategy   = errors.New("unknown onset strategy")
	ErrInvalidDivisor    = errors.New("threshold divisor must be positive")
	ErrInvalidFraction   = errors.New("max fraction must be in [0, 1]")
	ErrInvalidResolution = errors.New("merge resolution must not be negative")
)
