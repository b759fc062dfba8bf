// SPDX-License-Identifier: EPL-2.0

package cluster

import "errors"

var (
	// ErrInvalidClusterCount is returned when K is outside [1, points].
	ErrInvalidClusterCount = errors.New("cluster count must be between 1 and the number of notes")
	// ErrInconsistentFeatureLength is returned when feature vectors differ
	// in length.
	ErrInconsistentFeatureLength = errors.New("feature vectors differ in length")

	ErrInvalidMaxIterations = errors.New("max iterations must not be negative")
)
