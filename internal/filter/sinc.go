package filter

import "math"

// LowPass returns a windowed-sinc low-pass kernel of the given odd length.
//
// fc is the cutoff as a fraction of the Nyquist frequency (2·cutoff/rate).
// Tap n, counted from the center, is sin(fc·π·n)/(π·n) with the limit fc at
// n = 0, multiplied by the taper.
func LowPass(length int, fc float64, taper WindowFunc) []float64 {
	if length < 1 {
		return []float64{}
	}

	w := taper(length)
	h := make([]float64, length)
	half := (length - 1) / 2

	for i := range length {
		n := float64(i - half)

		sincValue := fc
		if i != half {
			sincValue = math.Sin(fc*sincPiMultiplier*n) / (sincPiMultiplier * n)
		}

		h[i] = sincValue * w[i]
	}

	return h
}

// SpectralInvert turns a low-pass kernel into the matching high-pass one in
// place: every tap is negated and one is added to the center tap.
func SpectralInvert(h []float64) {
	if len(h) == 0 {
		return
	}
	for i := range h {
		h[i] = -h[i]
	}
	h[len(h)/2] += sincCenterTap
}
