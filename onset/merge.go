// SPDX-License-Identifier: EPL-2.0

package onset

import (
	"fmt"
	"slices"
)

// Merge collapses candidates belonging to the same event. The first
// candidate is kept; every later one is kept only if it lies more than
// resolution samples after the last kept index. candidates need not be
// sorted and may contain duplicates; the input is not modified.
func Merge(candidates []int, resolution int) ([]int, error) {
	if resolution < 0 {
		return nil, fmt.Errorf("%d: %w", resolution, ErrInvalidResolution)
	}
	if len(candidates) == 0 {
		return nil, ErrNoOnsetsDetected
	}

	sorted := slices.Clone(candidates)
	slices.Sort(sorted)

	current := sorted[0]
	onsets := []int{current}
	for _, c := range sorted[1:] {
		if c-current > resolution {
			onsets = append(onsets, c)
			current = c
		}
	}

	return onsets, nil
}

// Find runs Detect then Merge.
func Find(env []float64, s Strategy, p Params, resolution int) ([]int, error) {
	candidates, err := Detect(env, s, p)
	if err != nil {
		return nil, err
	}
	return Merge(candidates, resolution)
}
