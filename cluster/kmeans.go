// SPDX-License-Identifier: EPL-2.0

package cluster

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

const (
	DefaultMaxIterations        = 100
	DefaultSeed          uint64 = 1
)

// Options configure a clustering run.
type Options struct {
	// K is the number of clusters.
	K int `json:"k"`
	// MaxIterations bounds the assign/update loop. Zero selects
	// DefaultMaxIterations.
	MaxIterations int `json:"max_iterations,omitempty"`
	// Seed drives centroid initialization; equal seeds give equal results.
	Seed uint64 `json:"seed"`

	Logger logrus.FieldLogger `json:"-"`
}

// Result is the outcome of one run.
type Result struct {
	// Labels holds the cluster of every point, in input order.
	Labels    []int       `json:"labels"`
	Centroids [][]float64 `json:"centroids"`
	// Iterations is the number of assign/update rounds performed.
	Iterations int  `json:"iterations"`
	Converged  bool `json:"converged"`
	// Reseeds counts clusters refilled after losing every member.
	Reseeds int `json:"reseeds"`
}

// KMeans partitions points into opts.K clusters. points are not modified.
func KMeans(points [][]float64, opts Options) (*Result, error) {
	if opts.K < 1 || opts.K > len(points) {
		return nil, fmt.Errorf("k=%d for %d points: %w", opts.K, len(points), ErrInvalidClusterCount)
	}
	if opts.MaxIterations < 0 {
		return nil, fmt.Errorf("%d: %w", opts.MaxIterations, ErrInvalidMaxIterations)
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("point %d has %d values, point 0 has %d: %w", i, len(p), dim, ErrInconsistentFeatureLength)
		}
	}

	maxIter := opts.MaxIterations
	if maxIter == 0 {
		maxIter = DefaultMaxIterations
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	km := &kmeans{
		points:    points,
		centroids: seedCentroids(points, opts.K, rng),
		labels:    make([]int, len(points)),
		counts:    make([]int, opts.K),
	}
	for i := range km.labels {
		km.labels[i] = -1
	}

	res := &Result{}
	for res.Iterations < maxIter {
		res.Iterations++

		changed := km.assign()
		reseeded := km.reseed()
		km.update()

		res.Reseeds += reseeded
		if changed+reseeded == 0 {
			res.Converged = true
			break
		}
	}

	res.Labels = km.labels
	res.Centroids = km.centroids

	log.WithFields(logrus.Fields{
		"points":     len(points),
		"k":          opts.K,
		"iterations": res.Iterations,
		"converged":  res.Converged,
		"reseeds":    res.Reseeds,
	}).Debug("k-means finished")

	return res, nil
}

// seedCentroids picks k input vectors in a seeded random order,
// preferring vectors distinct from those already picked.
func seedCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	order := rng.Perm(len(points))
	chosen := make([]int, 0, k)
	taken := make([]bool, len(points))

	for _, i := range order {
		if len(chosen) == k {
			break
		}
		dup := slices.ContainsFunc(chosen, func(j int) bool {
			return floats.Equal(points[i], points[j])
		})
		if !dup {
			chosen = append(chosen, i)
			taken[i] = true
		}
	}
	// Fewer than k distinct vectors: fill with the rest.
	for _, i := range order {
		if len(chosen) == k {
			break
		}
		if !taken[i] {
			chosen = append(chosen, i)
			taken[i] = true
		}
	}

	centroids := make([][]float64, k)
	for c, i := range chosen {
		centroids[c] = slices.Clone(points[i])
	}
	return centroids
}

type kmeans struct {
	points    [][]float64
	centroids [][]float64
	labels    []int
	counts    []int
}

// nearest returns the closest centroid to p; the lowest index wins ties.
func (km *kmeans) nearest(p []float64) (int, float64) {
	best, bestDist := 0, floats.Distance(p, km.centroids[0], 2)
	for c := 1; c < len(km.centroids); c++ {
		if d := floats.Distance(p, km.centroids[c], 2); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}

// assign moves every point to its nearest centroid and returns how many
// labels changed. A point equally close to its current centroid stays.
func (km *kmeans) assign() int {
	clear(km.counts)
	changed := 0
	for i, p := range km.points {
		c, d := km.nearest(p)
		if cur := km.labels[i]; cur >= 0 && cur != c && floats.Distance(p, km.centroids[cur], 2) == d {
			c = cur
		}
		if km.labels[i] != c {
			km.labels[i] = c
			changed++
		}
		km.counts[c]++
	}
	return changed
}

// reseed gives every empty cluster the point farthest from its own
// centroid, taken from a cluster that can spare one. It returns the
// number of clusters refilled.
func (km *kmeans) reseed() int {
	reseeded := 0
	for c, n := range km.counts {
		if n > 0 {
			continue
		}

		far, farDist := -1, -1.0
		for i, p := range km.points {
			l := km.labels[i]
			if km.counts[l] < 2 {
				continue
			}
			if d := floats.Distance(p, km.centroids[l], 2); d > farDist {
				far, farDist = i, d
			}
		}
		if far < 0 {
			// Only reachable when k exceeds the number of points.
			continue
		}

		km.counts[km.labels[far]]--
		km.labels[far] = c
		km.counts[c] = 1
		copy(km.centroids[c], km.points[far])
		reseeded++
	}
	return reseeded
}

// update moves every non-empty centroid to the mean of its members.
func (km *kmeans) update() {
	sums := make([][]float64, len(km.centroids))
	for c := range sums {
		sums[c] = make([]float64, len(km.centroids[c]))
	}
	for i, p := range km.points {
		floats.Add(sums[km.labels[i]], p)
	}
	for c, sum := range sums {
		if km.counts[c] == 0 {
			continue
		}
		floats.Scale(1/float64(km.counts[c]), sum)
		km.centroids[c] = sum
	}
}
