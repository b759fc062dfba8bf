// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/beatbot/audio"
	"github.com/ik5/beatbot/formats/wav"
)

func Example() {
	file := new(bytes.Buffer)
	if err := wav.WriteSamples(file, 8000, []int{0, 1000, -1000, 0}); err != nil {
		fmt.Println("write error:", err)
		return
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(file.Bytes()))
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}

	w, err := audio.ReadWaveform(src, audio.ReadOptions{})
	if err != nil {
		fmt.Println("read error:", err)
		return
	}

	fmt.Println(w.SampleRate, w.Samples)
	// Output: 8000 [0 1000 -1000 0]
}
