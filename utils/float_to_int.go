// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// pcm16Scale is the divisor the decoders use when normalizing 16-bit PCM.
const pcm16Scale = 32768.0

// Float32ToInt16 converts a normalized sample back to 16-bit PCM.
// It is the exact inverse of the x/32768 normalization done by the
// format decoders, so decoded integer samples survive the round trip.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * pcm16Scale)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// Float32ToSample is Float32ToInt16 widened to the integer type
// used by audio.Waveform.
func Float32ToSample(x float32) int {
	return int(Float32ToInt16(x))
}
