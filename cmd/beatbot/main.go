// SPDX-License-Identifier: EPL-2.0

// Command beatbot finds the notes in an audio file, fingerprints them and
// groups them into instruments. The result is printed as JSON.
//
// Usage:
//
//	beatbot [flags] file.{wav,mp3,ogg,aiff}
//
// Flags override values read from -config.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ik5/beatbot"
	"github.com/ik5/beatbot/formats/wav"
	"github.com/ik5/beatbot/onset"
	"github.com/ik5/beatbot/spectrum"
)

type cliFlags struct {
	configPath string
	slicesDir  string
	out        string
	verbose    bool

	strategy      string
	divisor       float64
	maxFraction   float64
	resolution    int
	topK          int
	maxFrequency  float64
	transform     string
	window        string
	instruments   int
	maxIterations int
	seed          uint64
	workers       int
	limit         int
	rate          int
}

func parseFlags(fs *flag.FlagSet, args []string) (*cliFlags, error) {
	def := beatbot.DefaultConfig()
	c := &cliFlags{}

	fs.StringVar(&c.configPath, "config", "", "JSON config file")
	fs.StringVar(&c.slicesDir, "slices", "", "write every note as a WAV file into this directory")
	fs.StringVar(&c.out, "o", "", "write the report here instead of stdout")
	fs.BoolVar(&c.verbose, "v", false, "log pipeline stages")

	fs.StringVar(&c.strategy, "strategy", string(def.Strategy), "onset strategy: differential|absolute")
	fs.Float64Var(&c.divisor, "divisor", def.Divisor, "threshold divisor (0 = strategy default)")
	fs.Float64Var(&c.maxFraction, "max-fraction", def.MaxFraction, "absolute threshold as a fraction of the peak (0 = use divisor)")
	fs.IntVar(&c.resolution, "resolution", def.Resolution, "minimum samples between onsets")
	fs.IntVar(&c.topK, "top", def.TopK, "spectral bins kept per note")
	fs.Float64Var(&c.maxFrequency, "max-freq", def.MaxFrequency, "spectral cutoff in Hz (0 = none)")
	fs.StringVar(&c.transform, "fft", string(def.Transform), "FFT backend: gonum|go-dsp")
	fs.StringVar(&c.window, "window", string(def.Window), "analysis window: none|hann|hamming")
	fs.IntVar(&c.instruments, "instruments", def.Instruments, "number of instruments (0 = skip clustering)")
	fs.IntVar(&c.maxIterations, "iterations", def.MaxIterations, "maximum k-means iterations")
	fs.Uint64Var(&c.seed, "seed", def.Seed, "k-means seed")
	fs.IntVar(&c.workers, "workers", def.Workers, "parallel note analyses (0 = all CPUs)")
	fs.IntVar(&c.limit, "limit", def.SampleLimit, "analyze at most this many samples (0 = all)")
	fs.IntVar(&c.rate, "rate", def.TargetRate, "resample to this rate first (0 = native)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

// config starts from the file (or the defaults) and applies every flag
// given on the command line.
func (c *cliFlags) config(fs *flag.FlagSet) (beatbot.Config, error) {
	cfg := beatbot.DefaultConfig()
	if c.configPath != "" {
		var err error
		if cfg, err = beatbot.LoadConfig(c.configPath); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strategy":
			cfg.Strategy = onset.Strategy(c.strategy)
		case "divisor":
			cfg.Divisor = c.divisor
		case "max-fraction":
			cfg.MaxFraction = c.maxFraction
		case "resolution":
			cfg.Resolution = c.resolution
		case "top":
			cfg.TopK = c.topK
		case "max-freq":
			cfg.MaxFrequency = c.maxFrequency
		case "fft":
			cfg.Transform = spectrum.Transform(c.transform)
		case "window":
			cfg.Window = spectrum.Window(c.window)
		case "instruments":
			cfg.Instruments = c.instruments
		case "iterations":
			cfg.MaxIterations = c.maxIterations
		case "seed":
			cfg.Seed = c.seed
		case "workers":
			cfg.Workers = c.workers
		case "limit":
			cfg.SampleLimit = c.limit
		case "rate":
			cfg.TargetRate = c.rate
		}
	})

	return cfg, cfg.Validate()
}

func run(ctx context.Context, args []string, stdout io.Writer, log *logrus.Logger) error {
	fs := flag.NewFlagSet("beatbot", flag.ContinueOnError)
	fs.SetOutput(log.Out)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: beatbot [flags] file")
		fs.PrintDefaults()
	}

	c, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected one input file, got %d", fs.NArg())
	}
	if c.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := c.config(fs)
	if err != nil {
		return err
	}
	cfg.Logger = log

	in := fs.Arg(0)
	s, err := beatbot.Open(in, cfg)
	if err != nil {
		return err
	}

	report, err := s.Report(ctx, cfg.Instruments)
	if err != nil {
		return err
	}

	if c.slicesDir != "" {
		if err := writeSlices(c.slicesDir, s, report); err != nil {
			return err
		}
	}

	out := stdout
	if c.out != "" {
		f, err := os.Create(c.out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":        in,
		"notes":       len(report.Onsets),
		"instruments": report.Instruments,
	}).Info("analysis complete")
	return nil
}

// writeSlices saves every note as note-NNN.wav, with the instrument label
// in the name when clustering ran.
func writeSlices(dir string, s *beatbot.Session, report *beatbot.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	w := s.Waveform()
	for i, n := range report.Notes {
		name := fmt.Sprintf("note-%03d.wav", i)
		if report.Labels != nil {
			name = fmt.Sprintf("note-%03d-inst%d.wav", i, report.Labels[i])
		}

		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		err = wav.WriteSamples(f, w.SampleRate, w.Samples[n.Start:n.End])
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		stop()
		log.WithError(err).Fatal("beatbot failed")
	}
}
