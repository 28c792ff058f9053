package fir

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// byteOrder is the host order; stored filters are not portable across
// machines of different endianness.
var byteOrder = binary.NativeEndian

// MarshalBinary encodes the filter as a fixed record:
//
//	int32 kind | int32 window | float32 cutoff | int32 kernel length |
//	float32 sample rate | kernel length × float32 coefficients
//
// in host byte order.
func (f *Filter) MarshalBinary() ([]byte, error) {
	if err := f.check(); err != nil {
		return nil, err
	}

	buf := make([]byte, 0, headerSize+coefficientSize*len(f.coeffs))
	buf = byteOrder.AppendUint32(buf, uint32(f.kind))
	buf = byteOrder.AppendUint32(buf, uint32(f.window))
	buf = byteOrder.AppendUint32(buf, math.Float32bits(f.cutoff))
	buf = byteOrder.AppendUint32(buf, uint32(int32(f.kernelLength)))
	buf = byteOrder.AppendUint32(buf, math.Float32bits(f.sampleRate))
	for _, c := range f.coeffs {
		buf = byteOrder.AppendUint32(buf, math.Float32bits(c))
	}

	return buf, nil
}

// WriteTo writes the binary record of the filter to w.
func (f *Filter) WriteTo(w io.Writer) (int64, error) {
	data, err := f.MarshalBinary()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write filter: %w", err)
	}
	return int64(n), nil
}

// Decode parses a record produced by MarshalBinary. Trailing bytes after
// the coefficients are rejected.
func Decode(data []byte) (*Filter, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: header truncated (%d bytes)", ErrInvalidFilterData, len(data))
	}

	h, err := decodeHeader(data[:headerSize])
	if err != nil {
		return nil, err
	}

	body := data[headerSize:]
	if want := h.kernelLength * coefficientSize; len(body) != want {
		return nil, fmt.Errorf("%w: expected %d coefficient bytes, got %d", ErrInvalidFilterData, want, len(body))
	}

	return newFilter(h.kind, h.window, h.cutoff, h.sampleRate, decodeCoefficients(body)), nil
}

// ReadFilter reads exactly one filter record from r.
func ReadFilter(r io.Reader) (*Filter, error) {
	var raw [headerSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return nil, readError(err, "header")
	}

	h, err := decodeHeader(raw[:])
	if err != nil {
		return nil, err
	}

	body := make([]byte, h.kernelLength*coefficientSize)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, readError(err, "coefficients")
	}

	return newFilter(h.kind, h.window, h.cutoff, h.sampleRate, decodeCoefficients(body)), nil
}

type header struct {
	kind         Kind
	window       Window
	cutoff       float32
	kernelLength int
	sampleRate   float32
}

func decodeHeader(b []byte) (header, error) {
	h := header{
		kind:         Kind(int32(byteOrder.Uint32(b[0:]))),
		window:       Window(int32(byteOrder.Uint32(b[fieldSize:]))),
		cutoff:       math.Float32frombits(byteOrder.Uint32(b[2*fieldSize:])),
		kernelLength: int(int32(byteOrder.Uint32(b[3*fieldSize:]))),
		sampleRate:   math.Float32frombits(byteOrder.Uint32(b[4*fieldSize:])),
	}

	switch {
	case !h.kind.Valid():
		return h, fmt.Errorf("%w: unknown kind tag %d", ErrInvalidFilterData, int32(h.kind))
	case !h.window.Valid():
		return h, fmt.Errorf("%w: unknown window tag %d", ErrInvalidFilterData, int32(h.window))
	case !positiveFinite(float64(h.cutoff)):
		return h, fmt.Errorf("%w: cutoff frequency %v", ErrInvalidFilterData, h.cutoff)
	case !positiveFinite(float64(h.sampleRate)):
		return h, fmt.Errorf("%w: sample rate %v", ErrInvalidFilterData, h.sampleRate)
	case h.kernelLength <= 0 || h.kernelLength > MaxKernelLength || h.kernelLength%halfDivisor == 0:
		return h, fmt.Errorf("%w: kernel length %d", ErrInvalidFilterData, h.kernelLength)
	}

	return h, nil
}

func decodeCoefficients(b []byte) []float32 {
	coeffs := make([]float32, len(b)/coefficientSize)
	for i := range coeffs {
		coeffs[i] = math.Float32frombits(byteOrder.Uint32(b[i*coefficientSize:]))
	}
	return coeffs
}

func readError(err error, part string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s truncated", ErrInvalidFilterData, part)
	}
	return fmt.Errorf("failed to read filter %s: %w", part, err)
}
