// Package engine implements the direct-form convolution used to apply FIR kernels.
package engine

import (
	"github.com/AsmanHud/fir-filter/internal/simdops"
)

// Convolver applies a fixed FIR kernel to whole buffers by causal,
// truncated convolution:
//
//	dst[i] = Σ_{j=0}^{min(i, K-1)} kernel[j] * src[i-j]
//
// Output has the same length as the input; the K-1 tail samples a full
// linear convolution would produce are not computed. The kernel is stored
// reversed so each output sample is one contiguous dot product:
//
//	dst[i] = dot(reversed[max(0, K-1-i):], src[max(0, i-K+1) : i+1])
//
// A Convolver holds no per-call state and is safe for concurrent use.
type Convolver[F simdops.Float] struct {
	reversed []F
	ops      *simdops.Ops[F]
}

// NewConvolver creates a convolver for kernel. The kernel is copied.
// Returns nil for an empty kernel.
func NewConvolver[F simdops.Float](kernel []F) *Convolver[F] {
	k := len(kernel)
	if k == 0 {
		return nil
	}

	reversed := make([]F, k)
	for j, c := range kernel {
		reversed[k-1-j] = c
	}

	return &Convolver[F]{
		reversed: reversed,
		ops:      simdops.For[F](),
	}
}

// Len returns the kernel length.
func (c *Convolver[F]) Len() int {
	return len(c.reversed)
}

// Convolve writes the filtered signal into dst[:len(src)].
// dst must hold at least len(src) samples and must not overlap src.
func (c *Convolver[F]) Convolve(dst, src []F) {
	k := len(c.reversed)
	n := len(src)
	if n == 0 {
		return
	}
	_ = dst[n-1] // bounds check hint

	// Startup transient: fewer than k input samples are available.
	warmup := min(k-1, n)
	for i := range warmup {
		dst[i] = c.ops.DotProductUnsafe(c.reversed[k-1-i:], src[:i+1])
	}

	// Steady state: the full kernel overlaps the input.
	for i := warmup; i < n; i++ {
		dst[i] = c.ops.DotProductUnsafe(c.reversed, src[i-k+1:i+1])
	}
}
