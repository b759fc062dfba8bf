// SPDX-License-Identifier: EPL-2.0

package onset

// Segment is the half-open sample range [Start, End) of one note.
type Segment struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of samples in the segment.
func (s Segment) Len() int { return s.End - s.Start }

// Bounds returns note i of onsets. A note ends where the next one starts;
// the last note ends at total, the waveform length.
func Bounds(onsets []int, i, total int) Segment {
	end := total
	if i+1 < len(onsets) {
		end = onsets[i+1]
	}
	return Segment{Start: onsets[i], End: end}
}

// Segments returns the bounds of every note.
func Segments(onsets []int, total int) []Segment {
	out := make([]Segment, len(onsets))
	for i := range onsets {
		out[i] = Bounds(onsets, i, total)
	}
	return out
}
