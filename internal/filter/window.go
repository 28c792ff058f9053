// Package filter provides the windowed-sinc kernel design and analysis
// routines behind the fir package.
package filter

import (
	"math"

	"github.com/AsmanHud/fir-filter/internal/mathutil"
	"github.com/mjibson/go-dsp/window"
)

const (
	// Window normalization
	windowNormalizationFactor = 2.0

	// Sinc function constants
	sincCenterTap    = 1.0
	sincPiMultiplier = math.Pi
)

// WindowFunc returns an L-point symmetric taper. Index i of the result
// corresponds to tap offset i-(L-1)/2 from the kernel center.
type WindowFunc func(length int) []float64

// The cosine tapers come straight from go-dsp. Its index-based form
// 0.5-0.5cos(2πi/(L-1)) equals the centered form 0.5+0.5cos(2πn/(L-1))
// for n = i-(L-1)/2, and it already returns 1 for L == 1.
var (
	Rectangular WindowFunc = window.Rectangular
	Hanning     WindowFunc = window.Hann
	Hamming     WindowFunc = window.Hamming
	Blackman    WindowFunc = window.Blackman
)

// Kaiser returns a Kaiser taper with shape parameter beta, evaluated with a
// power series of the given number of terms (0 selects the default).
func Kaiser(beta float64, terms int) WindowFunc {
	return func(length int) []float64 {
		return KaiserWindow(length, beta, terms)
	}
}

// KaiserWindow generates a Kaiser window of the specified length and β parameter.
//
//	w[n] = I₀(β·sqrt(1 - ((n-α)/α)²)) / I₀(β),  α = (L-1)/2
//
// The window is symmetric: w[i] = w[length-1-i]. Its center value is 1.
func KaiserWindow(length int, beta float64, terms int) []float64 {
	if length < 1 {
		return []float64{}
	}

	w := make([]float64, length)

	// Special case for length 1
	if length == 1 {
		w[0] = sincCenterTap
		return w
	}

	alpha := float64(length-1) / windowNormalizationFactor
	i0Beta := mathutil.BesselI0Series(beta, terms)

	for n := range length {
		// Position relative to center: [-1, 1]
		x := (float64(n) - alpha) / alpha
		arg := beta * math.Sqrt(max(0, 1.0-x*x))
		w[n] = mathutil.BesselI0Series(arg, terms) / i0Beta
	}

	return w
}
