package fir

import (
	"fmt"
	"unsafe"
)

// Apply filters input and returns a new slice of the same length.
//
//	output[i] = Σ_{j=0}^{min(i, K-1)} c[j]·input[i-j]
//
// The convolution is causal and truncated: samples before input[0] are
// treated as zero and the K-1 tail samples past the end are discarded.
// A nil input is rejected; an empty one yields an empty result.
func (f *Filter) Apply(input []float32) ([]float32, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, fmt.Errorf("%w: input is nil", ErrInvalidArgument)
	}

	output := make([]float32, len(input))
	f.conv.Convolve(output, input)
	return output, nil
}

// ApplyTo filters src into dst[:len(src)]. dst may be src itself.
//
// All preconditions are checked before dst is written, so a failed call
// leaves dst unchanged.
func (f *Filter) ApplyTo(dst, src []float32) error {
	if err := f.check(); err != nil {
		return err
	}

	if src == nil {
		return fmt.Errorf("%w: input is nil", ErrInvalidArgument)
	}

	if dst == nil {
		return fmt.Errorf("%w: output is nil", ErrInvalidArgument)
	}

	if len(dst) < len(src) {
		return fmt.Errorf("%w: output length %d < input length %d", ErrInvalidArgument, len(dst), len(src))
	}

	if len(src) == 0 {
		return nil
	}

	// Each output sample reads earlier inputs, so an overlapping dst would
	// clobber them. Work from a copy.
	if overlaps(dst, src) {
		src = append([]float32(nil), src...)
	}

	f.conv.Convolve(dst, src)
	return nil
}

func (f *Filter) check() error {
	if f == nil {
		return fmt.Errorf("%w: filter is nil", ErrInvalidArgument)
	}
	if f.conv == nil || len(f.coeffs) == 0 {
		return fmt.Errorf("%w: filter has no coefficients", ErrInvalidArgument)
	}
	return nil
}

// overlaps reports whether the backing arrays of a and b share memory
// within their lengths. Both must be non-empty.
func overlaps(a, b []float32) bool {
	aStart := uintptr(unsafe.Pointer(&a[0]))
	aEnd := uintptr(unsafe.Pointer(&a[len(a)-1]))
	bStart := uintptr(unsafe.Pointer(&b[0]))
	bEnd := uintptr(unsafe.Pointer(&b[len(b)-1]))
	return aStart <= bEnd && bStart <= aEnd
}
