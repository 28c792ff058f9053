package mathutil

// Numerical thresholds
const (
	kaiserBetaMinThreshold = 0.1 // Minimum β for attenuation calculation
)

// Kaiser window formula constants
// From Kaiser & Schafer's empirical formulas
const (
	kaiserBetaHighCoeff1 = 0.1102 // Coefficient for high attenuation
	kaiserBetaHighOffset = 8.7    // Offset for high attenuation
)

// Common division constants
const (
	halfDivisor = 2.0 // Division by 2
)
