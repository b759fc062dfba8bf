// SPDX-License-Identifier: EPL-2.0

package cluster

import (
	"slices"

	"github.com/ik5/beatbot/spectrum"
)

// Features returns the feature vector of every profile: its frequencies,
// strongest bin first.
func Features(profiles []spectrum.Profile) [][]float64 {
	out := make([][]float64, len(profiles))
	for i, p := range profiles {
		out[i] = slices.Clone(p.Frequencies)
	}
	return out
}

// Instruments labels every note by clustering its profile into opts.K
// instruments. All profiles must have been computed with the same top-k.
func Instruments(profiles []spectrum.Profile, opts Options) (*Result, error) {
	return KMeans(Features(profiles), opts)
}

// Distinct returns the number of different labels in labels.
func Distinct(labels []int) int {
	seen := make(map[int]struct{}, len(labels))
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	return len(seen)
}
