// SPDX-License-Identifier: EPL-2.0

package onset_test

import (
	"fmt"

	"github.com/ik5/beatbot/onset"
)

func Example() {
	samples := make([]int, 12000)
	samples[3000] = 900
	samples[3001] = 600 // same hit
	samples[9000] = 800

	env := onset.Envelope(samples)
	candidates, _ := onset.Detect(env, onset.Absolute, onset.Params{MaxFraction: 0.5})
	onsets, err := onset.Merge(candidates, 2000)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(candidates, onsets)
	// Output: [3000 3001 9000] [3000 9000]
}
