// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{ErrInvalidDstSize, ErrUnsupportedFormat, ErrInvalidSampleRate, ErrInvalidSampleLimit, ErrNoChannels}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v matches %v", a, b)
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%q: %w", "flac", ErrUnsupportedFormat)
	if !errors.Is(wrapped, ErrUnsupportedFormat) {
		t.Error("errors.Is() failed for wrapped ErrUnsupportedFormat")
	}

	joined := errors.Join(ErrInvalidDstSize, errors.New("additional context"))
	if !errors.Is(joined, ErrInvalidDstSize) {
		t.Error("errors.Is() failed for joined ErrInvalidDstSize")
	}
}
