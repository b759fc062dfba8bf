// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"container/heap"
	"slices"
)

// bin is one spectrum line.
type bin struct {
	index     int
	magnitude float64
}

// stronger orders bins by descending magnitude; on equal magnitude the
// lower frequency wins.
func stronger(a, b bin) bool {
	if a.magnitude != b.magnitude {
		return a.magnitude > b.magnitude
	}
	return a.index < b.index
}

// weakest is a min-heap keyed on strength: the root is the bin that
// would be evicted first.
type weakest []bin

func (h weakest) Len() int           { return len(h) }
func (h weakest) Less(i, j int) bool { return stronger(h[j], h[i]) }
func (h weakest) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *weakest) Push(x any)        { *h = append(*h, x.(bin)) }
func (h *weakest) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// topBins returns the k strongest of magnitudes, strongest first.
// Fewer than k magnitudes are all returned.
func topBins(magnitudes []float64, k int) []bin {
	h := make(weakest, 0, min(k, len(magnitudes)))
	for i, m := range magnitudes {
		b := bin{index: i, magnitude: m}
		switch {
		case len(h) < k:
			heap.Push(&h, b)
		case stronger(b, h[0]):
			h[0] = b
			heap.Fix(&h, 0)
		}
	}

	out := []bin(h)
	slices.SortFunc(out, func(a, b bin) int {
		if stronger(a, b) {
			return -1
		}
		if stronger(b, a) {
			return 1
		}
		return 0
	})
	return out
}
