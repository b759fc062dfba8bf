// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates the Catmull-Rom segment through y1 and y2 at
// t in [0, 1]; y0 and y3 are the outer neighbours. t=0 yields y1 and t=1
// yields y2.
func CubicInterpolate(y0, y1, y2, y3, t float32) float32 {
	slope1 := 0.5 * (y2 - y0)
	slope2 := 0.5 * (y3 - y1)
	d := y2 - y1

	c2 := 3*d - 2*slope1 - slope2
	c3 := slope1 + slope2 - 2*d

	return y1 + t*(slope1+t*(c2+t*c3))
}
