// SPDX-License-Identifier: EPL-2.0

package beatbot

import (
	"errors"

	"github.com/ik5/beatbot/cluster"
	"github.com/ik5/beatbot/onset"
	"github.com/ik5/beatbot/spectrum"
)

// Analysis errors, shared with the stage packages so that errors.Is
// matches either name.
var (
	ErrEmptyWaveform             = onset.ErrEmptyWaveform
	ErrNoOnsetsDetected          = onset.ErrNoOnsetsDetected
	ErrDegenerateSegment         = spectrum.ErrDegenerateSegment
	ErrInconsistentFeatureLength = cluster.ErrInconsistentFeatureLength
	ErrInvalidClusterCount       = cluster.ErrInvalidClusterCount
)

var (
	ErrNilWaveform        = errors.New("nil waveform")
	ErrInvalidInstruments = errors.New("instrument count must not be negative")
)
