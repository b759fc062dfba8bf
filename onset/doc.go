// SPDX-License-Identifier: EPL-2.0

// Package onset finds the sample positions where notes begin.
//
// Detection runs in two steps. Detect scans the amplitude envelope with
// one of a closed set of strategies and returns raw candidate indices;
// an attack transient usually yields many neighbouring candidates.
// Merge then keeps one index per event, so that consecutive onsets are
// more than the configured resolution apart.
//
//	env := onset.Envelope(w.Samples)
//	candidates, err := onset.Detect(env, onset.Differential, onset.Params{})
//	onsets, err := onset.Merge(candidates, 2000)
//
// # Strategies
//
// Differential flags index i when env[i+1]-env[i] exceeds
// min + (max-min)/divisor (default divisor 6). It reacts to rising edges
// and ignores sustained loud passages.
//
// Absolute flags index i when env[i] exceeds either MaxFraction*max or
// min + (max-min)/divisor (default divisor 3). It suits sparse hits
// without a sharp attack.
//
// An envelope without contrast (max == min) produces no candidates, and
// Merge then reports ErrNoOnsetsDetected.
package onset
