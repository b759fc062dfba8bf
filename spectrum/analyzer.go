// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/beatbot/onset"
)

const (
	// DefaultTopK is the number of bins kept per note.
	DefaultTopK = 30
	// DefaultMaxFrequency is the spectral cutoff in Hz.
	DefaultMaxFrequency = 8000
)

// Profile is the spectral fingerprint of one note: its strongest bins
// below the cutoff, strongest first. Frequencies and Magnitudes are
// paired by index.
type Profile struct {
	Onset       int       `json:"onset"`
	Frequencies []float64 `json:"frequencies"`
	Magnitudes  []float64 `json:"magnitudes"`
}

// Len returns the number of bins in the profile.
func (p Profile) Len() int { return len(p.Frequencies) }

// Options configure an Analyzer.
type Options struct {
	// TopK is the number of strongest bins kept per note.
	TopK int `json:"top_k"`
	// MaxFrequency drops bins at or above this frequency in Hz.
	// Zero keeps the full band.
	MaxFrequency float64   `json:"max_frequency"`
	Transform    Transform `json:"transform,omitempty"`
	Window       Window    `json:"window,omitempty"`
	// Workers bounds concurrent note analyses. Zero uses GOMAXPROCS.
	Workers int `json:"workers,omitempty"`

	Logger logrus.FieldLogger `json:"-"`
}

// DefaultOptions returns 30 bins below 8 kHz on the gonum backend,
// without a window.
func DefaultOptions() Options {
	return Options{
		TopK:         DefaultTopK,
		MaxFrequency: DefaultMaxFrequency,
		Transform:    Gonum,
		Window:       NoWindow,
	}
}

// Analyzer turns notes into Profiles. It is safe for concurrent use.
type Analyzer struct {
	topK         int
	maxFrequency float64
	magnitudes   magnitudeFunc
	window       Window
	workers      int
	log          logrus.FieldLogger
}

// New validates opts and returns an Analyzer.
func New(opts Options) (*Analyzer, error) {
	if opts.TopK < 1 {
		return nil, fmt.Errorf("%d: %w", opts.TopK, ErrInvalidTopK)
	}
	if opts.MaxFrequency < 0 || math.IsNaN(opts.MaxFrequency) {
		return nil, fmt.Errorf("%v: %w", opts.MaxFrequency, ErrInvalidMaxFrequency)
	}
	if opts.Workers < 0 {
		return nil, fmt.Errorf("%d: %w", opts.Workers, ErrInvalidWorkers)
	}

	t, err := ParseTransform(string(opts.Transform))
	if err != nil {
		return nil, err
	}
	w, err := ParseWindow(string(opts.Window))
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Analyzer{
		topK:         opts.TopK,
		maxFrequency: opts.MaxFrequency,
		magnitudes:   transforms[t],
		window:       w,
		workers:      workers,
		log:          log,
	}, nil
}

// Profile fingerprints samples[seg.Start:seg.End].
func (a *Analyzer) Profile(samples []int, seg onset.Segment, sampleRate int) (Profile, error) {
	if sampleRate <= 0 {
		return Profile{}, fmt.Errorf("%d: %w", sampleRate, ErrInvalidSampleRate)
	}
	if seg.Start < 0 || seg.End > len(samples) || seg.Start > seg.End {
		return Profile{}, fmt.Errorf("[%d, %d) of %d samples: %w", seg.Start, seg.End, len(samples), ErrOnsetOutOfRange)
	}
	if seg.Len() < 2 {
		return Profile{}, fmt.Errorf("%d samples at %d: %w", seg.Len(), seg.Start, ErrDegenerateSegment)
	}

	n := seg.Len()
	x := make([]float64, n)
	for i, s := range samples[seg.Start:seg.End] {
		x[i] = float64(s)
	}
	a.window.apply(x)

	mags := a.magnitudes(x)
	mags = mags[:a.cutoff(len(mags), sampleRate, n)]

	top := topBins(mags, a.topK)
	p := Profile{
		Onset:       seg.Start,
		Frequencies: make([]float64, len(top)),
		Magnitudes:  make([]float64, len(top)),
	}
	for i, b := range top {
		p.Frequencies[i] = binFrequency(b.index, sampleRate, n)
		p.Magnitudes[i] = b.magnitude
	}
	return p, nil
}

// cutoff returns the index of the first of bins whose frequency reaches
// maxFrequency, or bins when none does.
func (a *Analyzer) cutoff(bins, sampleRate, n int) int {
	if a.maxFrequency == 0 {
		return bins
	}
	return sort.Search(bins, func(k int) bool {
		return binFrequency(k, sampleRate, n) >= a.maxFrequency
	})
}

// Analyze returns one Profile per onset, in onset order. The note of the
// last onset runs to the end of samples.
//
// Every note is checked before any transform runs, so the reported
// ErrDegenerateSegment always names the earliest offending note.
func (a *Analyzer) Analyze(ctx context.Context, samples []int, sampleRate int, onsets []int) ([]Profile, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%d: %w", sampleRate, ErrInvalidSampleRate)
	}

	segments := onset.Segments(onsets, len(samples))
	for i, seg := range segments {
		if seg.Start < 0 || seg.End > len(samples) || seg.Start > seg.End {
			return nil, fmt.Errorf("note %d: onset %d of %d samples: %w", i, seg.Start, len(samples), ErrOnsetOutOfRange)
		}
		if seg.Len() < 2 {
			return nil, fmt.Errorf("note %d: %d samples at %d: %w", i, seg.Len(), seg.Start, ErrDegenerateSegment)
		}
	}

	profiles := make([]Profile, len(segments))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, seg := range segments {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := a.Profile(samples, seg, sampleRate)
			if err != nil {
				return fmt.Errorf("note %d: %w", i, err)
			}
			profiles[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.log.WithFields(logrus.Fields{
		"notes":         len(profiles),
		"top_k":         a.topK,
		"max_frequency": a.maxFrequency,
		"workers":       a.workers,
	}).Debug("spectral profiles computed")

	return profiles, nil
}

// Analyze is a one-shot helper around New and Analyzer.Analyze.
func Analyze(ctx context.Context, samples []int, sampleRate int, onsets []int, opts Options) ([]Profile, error) {
	a, err := New(opts)
	if err != nil {
		return nil, err
	}
	return a.Analyze(ctx, samples, sampleRate, onsets)
}
