package fir

// Kernel limits
const (
	// MaxKernelLength bounds the number of taps Design will allocate.
	// It also caps the kernel length accepted when decoding a stored filter.
	MaxKernelLength = 1 << 24

	halfDivisor = 2 // Center index of an odd-length kernel
)

// Kaiser shape parameters
const (
	kaiserBeta6  = 6.0
	kaiserBeta8  = 8.0
	kaiserBeta10 = 10.0
)

// Binary record layout: five 4-byte header fields followed by float32 taps.
const (
	headerFields   = 5
	fieldSize      = 4
	headerSize     = headerFields * fieldSize
	coefficientSize = 4
)

// Frequency response
const (
	// DefaultResponsePoints is used by FrequencyResponse when points <= 0.
	DefaultResponsePoints = 512
)
