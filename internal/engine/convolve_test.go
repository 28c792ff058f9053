package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/AsmanHud/fir-filter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const convolveTolerance = 1e-5

func randomSignal(rng *rand.Rand, n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = float32(rng.Float64()*2 - 1)
	}
	return s
}

// TestConvolve_MatchesDirect checks the SIMD path against a plain double loop,
// covering signals shorter than, equal to and longer than the kernel.
func TestConvolve_MatchesDirect(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		name      string
		kernelLen int
		signalLen int
	}{
		{"single_tap", 1, 16},
		{"signal_shorter_than_kernel", 31, 7},
		{"signal_equals_kernel", 11, 11},
		{"signal_one_past_kernel", 11, 12},
		{"long_signal", 101, 2000},
		{"empty_signal", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kernel := randomSignal(rng, tt.kernelLen)
			src := randomSignal(rng, tt.signalLen)

			c := NewConvolver(kernel)
			require.NotNil(t, c)

			dst := make([]float32, len(src))
			c.Convolve(dst, src)

			testutil.AssertSliceInDelta(t, testutil.DirectConvolve(kernel, src), dst, convolveTolerance)
		})
	}
}

// TestConvolve_ImpulseResponse verifies that a unit impulse reproduces the kernel.
func TestConvolve_ImpulseResponse(t *testing.T) {
	kernel := []float32{0.1, 0.2, 0.4, 0.2, 0.1}
	c := NewConvolver(kernel)

	src := make([]float32, 8)
	src[0] = 1
	dst := make([]float32, len(src))
	c.Convolve(dst, src)

	testutil.AssertSliceInDelta(t, []float32{0.1, 0.2, 0.4, 0.2, 0.1, 0, 0, 0}, dst, 1e-7)
}

// TestConvolve_WritesOnlyPrefix verifies that dst beyond len(src) is untouched.
func TestConvolve_WritesOnlyPrefix(t *testing.T) {
	c := NewConvolver([]float32{1, 1})
	dst := []float32{9, 9, 9, 9}
	c.Convolve(dst, []float32{1, 2})

	assert.Equal(t, []float32{1, 3, 9, 9}, dst)
}

func TestNewConvolver_EmptyKernel(t *testing.T) {
	assert.Nil(t, NewConvolver[float32](nil))
	assert.Nil(t, NewConvolver([]float64{}))
}

func TestNewConvolver_CopiesKernel(t *testing.T) {
	kernel := []float32{1, 2, 3}
	c := NewConvolver(kernel)
	kernel[0] = 100

	dst := make([]float32, 1)
	c.Convolve(dst, []float32{1})
	assert.InDelta(t, 1.0, float64(dst[0]), 0)
	assert.Equal(t, 3, c.Len())
}

func TestConvolve_Float64(t *testing.T) {
	c := NewConvolver([]float64{0.5, 0.25})
	dst := make([]float64, 3)
	c.Convolve(dst, []float64{4, 8, 16})

	assert.InDeltaSlice(t, []float64{2, 5, 10}, dst, 1e-12)
}

func BenchmarkConvolve_1001Taps(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 4))
	c := NewConvolver(randomSignal(rng, 1001))
	src := randomSignal(rng, 48000)
	dst := make([]float32, len(src))

	for b.Loop() {
		c.Convolve(dst, src)
	}
}
