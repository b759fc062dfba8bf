// SPDX-License-Identifier: EPL-2.0

package onset

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Wrapped(t *testing.T) {
	t.Parallel()

	for _, sentinel := range []error{ErrEmptyWaveform, ErrNoOnsetsDetected, ErrUnknownStrategy, ErrInvalidDivisor, ErrInvalidFraction, ErrInvalidResolution} {
		wrapped := fmt.Errorf("analysis: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is() failed for wrapped %v", sentinel)
		}
	}

	if errors.Is(ErrEmptyWaveform, ErrNoOnsetsDetected) {
		t.Error("ErrEmptyWaveform must be distinct from ErrNoOnsetsDetected")
	}
}
