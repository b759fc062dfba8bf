// SPDX-License-Identifier: EPL-2.0

package beatbot

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ik5/beatbot/audio"
	"github.com/ik5/beatbot/formats"
)

// Open decodes the file at path, picking the decoder by extension, and
// starts a session over it. Multi-channel audio is mixed down to mono.
func Open(path string, cfg Config) (*Session, error) {
	return OpenWith(formats.DefaultRegistry(), path, cfg)
}

// OpenWith is Open with a caller-supplied decoder registry.
func OpenWith(reg *audio.Registry, path string, cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dec, err := reg.Lookup(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	cfg.logger().WithFields(logrus.Fields{
		"path":        path,
		"sample_rate": src.SampleRate(),
		"channels":    src.Channels(),
	}).Debug("audio decoded")

	return Load(src, cfg)
}

// Load reads src to the end (or to cfg.SampleLimit samples) and starts a
// session over the result. The caller keeps ownership of src.
func Load(src audio.Source, cfg Config) (*Session, error) {
	w, err := audio.ReadWaveform(src, audio.ReadOptions{
		TargetRate: cfg.TargetRate,
		Limit:      cfg.SampleLimit,
	})
	if err != nil {
		return nil, err
	}
	return New(w, cfg)
}
