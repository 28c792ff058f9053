package fir

import (
	"github.com/AsmanHud/fir-filter/internal/filter"
	"github.com/AsmanHud/fir-filter/internal/mathutil"
	"github.com/AsmanHud/fir-filter/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// Response is the frequency response of a filter sampled from DC up to
// Nyquist.
type Response struct {
	// Frequencies in Hz.
	Frequencies []float64

	// Magnitude is the linear gain at each frequency.
	Magnitude []float64

	// Phase in radians.
	Phase []float64

	// DCGain is the sum of the coefficients, |H(0)|.
	DCGain float64

	// CutoffGain is |H| evaluated exactly at the cutoff frequency.
	CutoffGain float64

	// PeakGain and MinGain are the extremes of Magnitude.
	PeakGain float64
	MinGain  float64

	// PeakFrequency is where PeakGain occurs, in Hz.
	PeakFrequency float64

	// KaiserAttenuationDB estimates the stopband attenuation of a Kaiser
	// design from its β. Zero for other windows.
	KaiserAttenuationDB float64
}

// FrequencyResponse evaluates the filter at points frequencies. A value
// <= 0 selects DefaultResponsePoints.
func (f *Filter) FrequencyResponse(points int) (*Response, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	if points <= 0 {
		points = DefaultResponsePoints
	}

	h := make([]float64, len(f.coeffs))
	for i, c := range f.coeffs {
		h[i] = float64(c)
	}

	fr := filter.ComputeFrequencyResponse(h, points)
	rate := float64(f.sampleRate)
	floats.Scale(rate, fr.Frequencies)

	peakIdx := floats.MaxIdx(fr.Magnitude)

	return &Response{
		Frequencies:         fr.Frequencies,
		Magnitude:           fr.Magnitude,
		Phase:               fr.Phase,
		DCGain:              simdops.Float64Ops().Sum(h),
		CutoffGain:          filter.MagnitudeAt(h, float64(f.cutoff)/rate),
		PeakGain:            fr.Magnitude[peakIdx],
		MinGain:             floats.Min(fr.Magnitude),
		PeakFrequency:       fr.Frequencies[peakIdx],
		KaiserAttenuationDB: mathutil.KaiserAttenuation(f.window.Beta()),
	}, nil
}

// MagnitudeDB converts a linear gain to decibels, clamping at -200 dB.
func MagnitudeDB(gain float64) float64 {
	return filter.MagnitudeDB(gain)
}
