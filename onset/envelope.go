// SPDX-License-Identifier: EPL-2.0

package onset

import "math"

// Envelope returns the absolute amplitude of every sample.
func Envelope(samples []int) []float64 {
	env := make([]float64, len(samples))
	for i, s := range samples {
		env[i] = math.Abs(float64(s))
	}
	return env
}
