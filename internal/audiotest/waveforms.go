// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Impulses returns length samples of silence with amplitude at each position.
func Impulses(length, amplitude int, positions ...int) []int {
	out := make([]int, length)
	for _, p := range positions {
		out[p] = amplitude
	}
	return out
}

// Evenly returns count positions starting at first and spaced by step.
func Evenly(first, step, count int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = first + i*step
	}
	return out
}

// Timbre describes one synthetic percussion voice: a click followed by a
// steady sine tail.
type Timbre struct {
	Frequency float64
	Click     int
	Level     int
}

// Low and High are two voices whose spectra do not overlap.
var (
	Low  = Timbre{Frequency: 220, Click: 30000, Level: 8000}
	High = Timbre{Frequency: 3000, Click: 30000, Level: 8000}
)

// Pattern renders events of length spacing each, after lead samples of
// silence. Event i uses voices[i].
func Pattern(sampleRate, lead, spacing int, voices ...Timbre) []int {
	out := make([]int, lead+spacing*len(voices))
	for i, v := range voices {
		start := lead + i*spacing
		out[start] = v.Click
		for j := 1; j < spacing; j++ {
			t := float64(j) / float64(sampleRate)
			out[start+j] = int(math.Round(float64(v.Level) * math.Sin(2*math.Pi*v.Frequency*t)))
		}
	}
	return out
}

// Alternate returns n voices cycling through the given timbres.
func Alternate(n int, timbres ...Timbre) []Timbre {
	out := make([]Timbre, n)
	for i := range out {
		out[i] = timbres[i%len(timbres)]
	}
	return out
}
