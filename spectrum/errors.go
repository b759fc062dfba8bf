// SPDX-License-Identifier: EPL-2.0

package spectrum

import "errors"

var (
	// ErrDegenerateSegment is returned for a note shorter than two samples.
	ErrDegenerateSegment = errors.New("note segment too short to transform")

	ErrInvalidTopK         = errors.New("top-k must be at least 1")
	ErrInvalidMaxFrequency = errors.New("max frequency must not be negative")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrInvalidWorkers      = errors.New("workers must not be negative")
	ErrUnknownTransform    = errors.New("unknown transform backend")
	ErrUnknownWindow       = errors.New("unknown analysis window")
	ErrOnsetOutOfRange     = errors.New("onset outside the waveform")
)
