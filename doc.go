// Package fir designs windowed-sinc FIR filters and applies them to sampled
// signals.
//
// # Design
//
// A filter is described by its kind (low-pass or high-pass), a window, a
// cutoff frequency, a kernel length and a sample rate:
//
//	f, err := fir.Design(fir.Params{
//	    Kind:            fir.LowPass,
//	    Window:          fir.Hanning,
//	    CutoffFrequency: 1000,
//	    KernelLength:    11,
//	    SampleRate:      8000,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The ideal sinc kernel sin(fc·π·n)/(π·n), with fc = 2·cutoff/rate, is
// truncated to the kernel length and multiplied by the window. High-pass
// kernels are obtained by spectral inversion of the low-pass kernel. Even
// kernel lengths are rounded up so every kernel has a center tap.
//
// # Windows
//
//   - [Rectangular]: no taper.
//   - [Hanning], [Hamming], [Blackman]: cosine tapers.
//   - [KaiserB6], [KaiserB8], [KaiserB10]: Kaiser tapers with β = 6, 8, 10.
//     I₀ is evaluated with a truncated power series; [Params].BesselTerms
//     controls its order.
//
// # Filtering
//
// [Filter.Apply] performs direct-form causal convolution and returns exactly
// as many samples as it was given. The convolution tail is discarded:
//
//	out, err := f.Apply(samples)
//
// A Filter is immutable, so it may be shared between goroutines.
//
// # Persistence
//
// [Filter.MarshalBinary] and [Filter.WriteTo] produce a fixed binary record
// in host byte order; [Decode] and [ReadFilter] read it back exactly.
package fir
