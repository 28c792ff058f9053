package fir

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/AsmanHud/fir-filter/internal/engine"
	"github.com/AsmanHud/fir-filter/internal/filter"
)

// Kind selects the pass band of a filter.
type Kind int32

const (
	// LowPass passes frequencies below the cutoff.
	LowPass Kind = iota

	// HighPass passes frequencies above the cutoff. It is built from the
	// low-pass kernel by spectral inversion.
	HighPass
)

// Window selects the taper applied to the ideal sinc kernel.
type Window int32

const (
	// Rectangular applies no taper. Narrowest transition, worst sidelobes.
	Rectangular Window = iota

	// Hanning is the raised cosine 0.5+0.5cos(θ).
	Hanning

	// Hamming is 0.54+0.46cos(θ).
	Hamming

	// Blackman is 0.42+0.5cos(θ)+0.08cos(2θ).
	Blackman

	// KaiserB6 is a Kaiser window with β = 6.
	KaiserB6

	// KaiserB8 is a Kaiser window with β = 8.
	KaiserB8

	// KaiserB10 is a Kaiser window with β = 10.
	KaiserB10
)

var kindNames = [...]string{
	LowPass:  "lowpass",
	HighPass: "highpass",
}

var windowNames = [...]string{
	Rectangular: "rect",
	Hanning:     "hanning",
	Hamming:     "hamming",
	Blackman:    "blackman",
	KaiserB6:    "kaiser_b6",
	KaiserB8:    "kaiser_b8",
	KaiserB10:   "kaiser_b10",
}

// Valid reports whether k is a known filter kind.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}

// Valid reports whether w is a known window.
func (w Window) Valid() bool {
	return w >= 0 && int(w) < len(windowNames)
}

func (w Window) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Window(%d)", int32(w))
	}
	return windowNames[w]
}

// Beta returns the Kaiser shape parameter of w, or 0 for non-Kaiser windows.
func (w Window) Beta() float64 {
	switch w {
	case KaiserB6:
		return kaiserBeta6
	case KaiserB8:
		return kaiserBeta8
	case KaiserB10:
		return kaiserBeta10
	default:
		return 0
	}
}

// ParseKind converts a command-line name ("lowpass", "highpass") to a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, &ParameterError{Field: "kind", Value: s}
}

// ParseWindow converts a command-line name such as "hanning" or "kaiser_b8"
// to a Window.
func ParseWindow(s string) (Window, error) {
	for i, name := range windowNames {
		if strings.EqualFold(s, name) {
			return Window(i), nil
		}
	}
	return 0, &ParameterError{Field: "window", Value: s}
}

// Common errors returned by the package.
var (
	// ErrInvalidParameter indicates a design parameter out of range.
	ErrInvalidParameter = errors.New("invalid filter parameter")

	// ErrInvalidArgument indicates an unusable filter or buffer passed to Apply.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidFilterData indicates a stored filter record that cannot be decoded.
	ErrInvalidFilterData = errors.New("invalid filter data")
)

// ParameterError describes which design parameter was rejected.
type ParameterError struct {
	Field string
	Value any
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v: %s = %v", ErrInvalidParameter, e.Field, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// Params holds the filter design parameters.
type Params struct {
	// Kind is the pass band (LowPass or HighPass).
	Kind Kind

	// Window is the taper applied to the sinc kernel.
	Window Window

	// CutoffFrequency is the -6 dB point in Hz.
	CutoffFrequency float64

	// KernelLength is the number of taps. Even values are rounded up to the
	// next odd value so the kernel has a center tap.
	KernelLength int

	// SampleRate is the sampling frequency in Hz.
	SampleRate float64

	// BesselTerms is the number of power series terms used for I₀ in the
	// Kaiser windows. Zero selects the default of 25.
	BesselTerms int
}

// Validate checks if the parameters describe a filter that can be designed.
func (p *Params) Validate() error {
	if !p.Kind.Valid() {
		return &ParameterError{Field: "kind", Value: int32(p.Kind)}
	}

	if !p.Window.Valid() {
		return &ParameterError{Field: "window", Value: int32(p.Window)}
	}

	if !positiveFinite(p.CutoffFrequency) {
		return &ParameterError{Field: "cutoff frequency", Value: p.CutoffFrequency}
	}

	if !positiveFinite(p.SampleRate) {
		return &ParameterError{Field: "sample rate", Value: p.SampleRate}
	}

	if p.KernelLength <= 0 || p.KernelLength > MaxKernelLength {
		return &ParameterError{Field: "kernel length", Value: p.KernelLength}
	}

	if p.BesselTerms < 0 {
		return &ParameterError{Field: "bessel terms", Value: p.BesselTerms}
	}

	return nil
}

// positiveFinite reports whether v survives conversion to the stored
// float32 as a positive, finite number.
func positiveFinite(v float64) bool {
	f := float32(v)
	return f > 0 && !math.IsInf(float64(f), 1)
}

// Filter is a designed FIR filter. It is immutable after Design or Decode
// returns, so one Filter may be applied from many goroutines at once.
type Filter struct {
	kind         Kind
	window       Window
	cutoff       float32
	kernelLength int
	sampleRate   float32
	coeffs       []float32

	conv *engine.Convolver[float32]
}

// Design builds a windowed-sinc filter from p.
//
// The kernel is computed in float64 and stored as float32. On error the
// returned filter is nil.
func Design(p Params) (*Filter, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	length := p.KernelLength
	if length%halfDivisor == 0 {
		length++
	}

	fc := halfDivisor * (p.CutoffFrequency / p.SampleRate)
	h := filter.LowPass(length, fc, taper(p.Window, p.BesselTerms))
	if p.Kind == HighPass {
		filter.SpectralInvert(h)
	}

	coeffs := make([]float32, length)
	for i, v := range h {
		coeffs[i] = float32(v)
	}

	return newFilter(p.Kind, p.Window, float32(p.CutoffFrequency), float32(p.SampleRate), coeffs), nil
}

// newFilter takes ownership of coeffs.
func newFilter(kind Kind, window Window, cutoff, sampleRate float32, coeffs []float32) *Filter {
	return &Filter{
		kind:         kind,
		window:       window,
		cutoff:       cutoff,
		kernelLength: len(coeffs),
		sampleRate:   sampleRate,
		coeffs:       coeffs,
		conv:         engine.NewConvolver(coeffs),
	}
}

func taper(w Window, besselTerms int) filter.WindowFunc {
	switch w {
	case Hanning:
		return filter.Hanning
	case Hamming:
		return filter.Hamming
	case Blackman:
		return filter.Blackman
	case KaiserB6, KaiserB8, KaiserB10:
		return filter.Kaiser(w.Beta(), besselTerms)
	default:
		return filter.Rectangular
	}
}

// Kind returns the pass band of the filter.
func (f *Filter) Kind() Kind { return f.kind }

// Window returns the taper the filter was designed with.
func (f *Filter) Window() Window { return f.window }

// CutoffFrequency returns the cutoff in Hz.
func (f *Filter) CutoffFrequency() float32 { return f.cutoff }

// KernelLength returns the number of taps (always odd).
func (f *Filter) KernelLength() int { return f.kernelLength }

// SampleRate returns the design sample rate in Hz.
func (f *Filter) SampleRate() float32 { return f.sampleRate }

// Coefficients returns a copy of the filter taps.
func (f *Filter) Coefficients() []float32 {
	return append([]float32(nil), f.coeffs...)
}

// Latency returns the group delay of the linear-phase kernel in samples.
func (f *Filter) Latency() int {
	return (f.kernelLength - 1) / halfDivisor
}
