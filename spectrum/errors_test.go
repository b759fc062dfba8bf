// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{
		ErrDegenerateSegment, ErrInvalidTopK, ErrInvalidMaxFrequency, ErrInvalidSampleRate,
		ErrInvalidWorkers, ErrUnknownTransform, ErrUnknownWindow, ErrOnsetOutOfRange,
	}
	for i, a := range all {
		if !errors.Is(fmt.Errorf("note %d: %w", i, a), a) {
			t.Errorf("wrapped %v not matched", a)
		}
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v matches %v", a, b)
			}
		}
	}
}
