// Package mathutil provides mathematical functions for FIR filter design.
package mathutil

// DefaultBesselTerms is the number of series terms used by BesselI0Series
// when the caller does not choose one. 25 terms keep the relative error
// below 1e-12 for the Kaiser shape factors used by the designer (6, 8, 10).
const DefaultBesselTerms = 25

// BesselI0Series computes the modified Bessel function of the first kind,
// order zero, I₀(x), from its truncated power series:
//
//	I₀(x) = Σ_{k=0}^{terms} ((x/2)^k / k!)²
//
// The series converges for every x but needs more terms as |x| grows;
// terms is the approximation order and terms <= 0 selects
// DefaultBesselTerms. Each term is derived from the previous one, so no
// factorial table is needed and nothing overflows for large k.
func BesselI0Series(x float64, terms int) float64 {
	if terms <= 0 {
		terms = DefaultBesselTerms
	}

	halfX := x / halfDivisor
	sum := 1.0
	term := 1.0 // (x/2)^k / k!
	for k := 1; k <= terms; k++ {
		term *= halfX / float64(k)
		sum += term * term
	}
	return sum
}

// KaiserAttenuation estimates the stopband attenuation in dB achieved by a
// Kaiser window with the given β parameter.
//
// Approximate inverse of Kaiser & Schafer's β formula:
//
//	att ≈ 8.7 + β / 0.1102
func KaiserAttenuation(beta float64) float64 {
	if beta < kaiserBetaMinThreshold {
		return 0.0
	}
	return kaiserBetaHighOffset + beta/kaiserBetaHighCoeff1
}
