// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"fmt"
	"math/cmplx"
	"slices"
	"strings"

	dspfft "github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Transform selects the FFT implementation.
type Transform string

const (
	Gonum Transform = "gonum"
	GoDSP Transform = "go-dsp"
)

// Transforms lists the available backends.
func Transforms() []Transform { return []Transform{Gonum, GoDSP} }

// ParseTransform resolves a backend name. The empty string selects Gonum.
func ParseTransform(name string) (Transform, error) {
	t := Transform(strings.ToLower(strings.TrimSpace(name)))
	if t == "" {
		return Gonum, nil
	}
	if !slices.Contains(Transforms(), t) {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownTransform)
	}
	return t, nil
}

// magnitudeFunc returns |X[k]| for k in [0, len(x)/2].
type magnitudeFunc func(x []float64) []float64

var transforms = map[Transform]magnitudeFunc{
	Gonum: gonumMagnitudes,
	GoDSP: godspMagnitudes,
}

func gonumMagnitudes(x []float64) []float64 {
	coeffs := fourier.NewFFT(len(x)).Coefficients(nil, x)
	return absAll(coeffs)
}

func godspMagnitudes(x []float64) []float64 {
	coeffs := dspfft.FFTReal(x)
	return absAll(coeffs[:len(x)/2+1])
}

func absAll(coeffs []complex128) []float64 {
	out := make([]float64, len(coeffs))
	for k, c := range coeffs {
		out[k] = cmplx.Abs(c)
	}
	return out
}

// binFrequency is the center frequency of bin k of an n-point real FFT.
func binFrequency(k, sampleRate, n int) float64 {
	return float64(k) * float64(sampleRate) / float64(n)
}

// Window selects the taper applied to a note before the transform.
type Window string

const (
	NoWindow Window = "none"
	Hann     Window = "hann"
	Hamming  Window = "hamming"
)

// Windows lists the available analysis windows.
func Windows() []Window { return []Window{NoWindow, Hann, Hamming} }

// ParseWindow resolves a window name. The empty string selects NoWindow.
func ParseWindow(name string) (Window, error) {
	w := Window(strings.ToLower(strings.TrimSpace(name)))
	if w == "" {
		return NoWindow, nil
	}
	if !slices.Contains(Windows(), w) {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownWindow)
	}
	return w, nil
}

var windows = map[Window]func(int) []float64{
	NoWindow: nil,
	Hann:     window.Hann,
	Hamming:  window.Hamming,
}

// apply tapers x in place.
func (w Window) apply(x []float64) {
	if fn := windows[w]; fn != nil {
		window.Apply(x, fn)
	}
}
