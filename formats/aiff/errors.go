// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"

	"github.com/ik5/beatbot/internal/pcm"
)

var (
	ErrNotAiffFile           = errors.New("not an AIFF file")
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
	// ErrUnsupportedBitDepth is returned for anything but 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = pcm.ErrUnsupportedBitDepth
)
