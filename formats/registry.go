// SPDX-License-Identifier: EPL-2.0

// Package formats wires every decoder into an audio.Registry.
package formats

import (
	"github.com/ik5/beatbot/audio"
	"github.com/ik5/beatbot/formats/aiff"
	"github.com/ik5/beatbot/formats/mp3"
	"github.com/ik5/beatbot/formats/vorbis"
	"github.com/ik5/beatbot/formats/wav"
)

// DefaultRegistry returns a registry keyed by file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return reg
}
