// SPDX-License-Identifier: EPL-2.0

package cluster

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Wrapped(t *testing.T) {
	t.Parallel()

	for _, sentinel := range []error{ErrInvalidClusterCount, ErrInconsistentFeatureLength, ErrInvalidMaxIterations} {
		if !errors.Is(fmt.Errorf("instruments: %w", sentinel), sentinel) {
			t.Errorf("wrapped %v not matched", sentinel)
		}
	}
	if errors.Is(ErrInvalidClusterCount, ErrInconsistentFeatureLength) {
		t.Error("sentinels must be distinct")
	}
}
