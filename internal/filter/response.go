package filter

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// DefaultResponsePoints is the number of frequency points used when the
// caller does not ask for a specific resolution.
const DefaultResponsePoints = 512

// FilterResponse holds the frequency response of a filter.
type FilterResponse struct {
	// Frequencies at which response was calculated (normalized, 0 to 0.5)
	Frequencies []float64

	// Magnitude response at each frequency (linear scale)
	Magnitude []float64

	// Phase response at each frequency (radians)
	Phase []float64
}

// ComputeFrequencyResponse calculates the frequency response of a FIR filter
// at numPoints evenly spaced frequencies from DC up to (not including) Nyquist.
//
// The kernel is zero padded (or time-aliased when it is longer than the
// transform) to 2·numPoints samples and transformed with a real FFT. Folding
// the kernel modulo the transform size keeps every bin equal to the exact
// DTFT at that frequency.
func ComputeFrequencyResponse(coeffs []float64, numPoints int) FilterResponse {
	if numPoints <= 0 {
		numPoints = DefaultResponsePoints
	}

	size := windowNormalizationFactor * numPoints
	seq := make([]float64, size)
	for n, h := range coeffs {
		seq[n%size] += h
	}

	spectrum := fourier.NewFFT(size).Coefficients(nil, seq)

	response := FilterResponse{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}

	for k := range numPoints {
		response.Frequencies[k] = float64(k) / float64(size)
		response.Magnitude[k] = cmplx.Abs(spectrum[k])
		response.Phase[k] = cmplx.Phase(spectrum[k])
	}

	return response
}

// MagnitudeAt evaluates |H(f)| directly for a single normalized frequency
// (0 to 0.5). It is used where a bin-aligned FFT point is not available.
func MagnitudeAt(coeffs []float64, freq float64) float64 {
	var realPart, imagPart float64
	omega := windowNormalizationFactor * sincPiMultiplier * freq

	for n, h := range coeffs {
		angle := omega * float64(n)
		realPart += h * math.Cos(angle)
		imagPart -= h * math.Sin(angle)
	}

	return math.Hypot(realPart, imagPart)
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	const (
		minMagnitude = 1e-10 // Avoid log(0)
		dbMultiplier = 20.0  // 20*log10 for magnitude
	)

	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
