// SPDX-License-Identifier: EPL-2.0

// Package cluster groups notes into instruments with k-means.
//
// KMeans is a plain Lloyd's algorithm with explicit state: centroids are
// seeded from distinct input vectors chosen by a seeded PCG source, then
// assignment and centroid update alternate until no label changes or
// MaxIterations is reached. A cluster left without members is reseeded
// from the point lying farthest from its centroid, so every label in
// [0, K) is used whenever K does not exceed the number of points.
//
// Instruments applies KMeans to spectrum profiles, using each profile's
// frequencies (strongest bin first) as its feature vector.
package cluster
