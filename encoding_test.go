package fir

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalBinary_Layout(t *testing.T) {
	f := mustDesign(t, refParams(HighPass, KaiserB8))

	data, err := f.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, headerSize+refKernel*coefficientSize)

	ne := binary.NativeEndian
	assert.Equal(t, uint32(HighPass), ne.Uint32(data[0:]))
	assert.Equal(t, uint32(KaiserB8), ne.Uint32(data[4:]))
	assert.InDelta(t, refCutoff, float64(math.Float32frombits(ne.Uint32(data[8:]))), 0)
	assert.Equal(t, uint32(refKernel), ne.Uint32(data[12:]))
	assert.InDelta(t, refSampleRate, float64(math.Float32frombits(ne.Uint32(data[16:]))), 0)

	coeffs := f.Coefficients()
	for i, c := range coeffs {
		got := math.Float32frombits(ne.Uint32(data[headerSize+i*coefficientSize:]))
		assert.Equal(t, math.Float32bits(c), math.Float32bits(got), "coefficient %d", i)
	}
}

// TestRoundTrip verifies that every kind and window survives persistence bit for bit.
func TestRoundTrip(t *testing.T) {
	for window := range referenceLowPass {
		for _, kind := range []Kind{LowPass, HighPass} {
			t.Run(kind.String()+"_"+window.String(), func(t *testing.T) {
				p := refParams(kind, window)
				p.KernelLength = 64
				p.CutoffFrequency = 440.5
				p.SampleRate = 44100
				f := mustDesign(t, p)

				var buf bytes.Buffer
				n, err := f.WriteTo(&buf)
				require.NoError(t, err)
				assert.Equal(t, int64(headerSize+65*coefficientSize), n)

				decoded, err := Decode(buf.Bytes())
				require.NoError(t, err)
				assertSameFilter(t, f, decoded)

				read, err := ReadFilter(bytes.NewReader(buf.Bytes()))
				require.NoError(t, err)
				assertSameFilter(t, f, read)
			})
		}
	}
}

func assertSameFilter(t *testing.T, want, got *Filter) {
	t.Helper()
	assert.Equal(t, want.Kind(), got.Kind())
	assert.Equal(t, want.Window(), got.Window())
	assert.Equal(t, math.Float32bits(want.CutoffFrequency()), math.Float32bits(got.CutoffFrequency()))
	assert.Equal(t, math.Float32bits(want.SampleRate()), math.Float32bits(got.SampleRate()))
	assert.Equal(t, want.KernelLength(), got.KernelLength())
	assert.Equal(t, want.Coefficients(), got.Coefficients())
}

// TestDecodedFilterApplies verifies a loaded filter produces identical output.
func TestDecodedFilterApplies(t *testing.T) {
	f := mustDesign(t, refParams(LowPass, Hanning))
	data, err := f.MarshalBinary()
	require.NoError(t, err)

	loaded, err := Decode(data)
	require.NoError(t, err)

	input := []float32{0.5, 1.5, 2.5, 3.5, 4.5, 10, 30, 50, 100}
	want, err := f.Apply(input)
	require.NoError(t, err)
	got, err := loaded.Apply(input)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecode_Corrupt(t *testing.T) {
	f := mustDesign(t, refParams(LowPass, Hanning))
	valid, err := f.MarshalBinary()
	require.NoError(t, err)

	ne := binary.NativeEndian
	patch := func(offset int, v uint32) []byte {
		b := bytes.Clone(valid)
		ne.PutUint32(b[offset:], v)
		return b
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short_header", valid[:headerSize-1]},
		{"missing_coefficients", valid[:headerSize]},
		{"truncated_coefficients", valid[:len(valid)-1]},
		{"trailing_bytes", append(bytes.Clone(valid), 0)},
		{"unknown_kind", patch(0, 2)},
		{"unknown_window", patch(4, 7)},
		{"zero_cutoff", patch(8, math.Float32bits(0))},
		{"nan_sample_rate", patch(16, math.Float32bits(float32(math.NaN())))},
		{"negative_sample_rate", patch(16, math.Float32bits(-8000))},
		{"even_kernel", patch(12, 10)},
		{"zero_kernel", patch(12, 0)},
		{"negative_kernel", patch(12, 0xFFFFFFF5)},
		{"oversized_kernel", patch(12, MaxKernelLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data)
			assert.Nil(t, got)
			require.ErrorIs(t, err, ErrInvalidFilterData)
		})
	}
}

func TestReadFilter_Truncated(t *testing.T) {
	f := mustDesign(t, refParams(LowPass, Blackman))
	data, err := f.MarshalBinary()
	require.NoError(t, err)

	for _, n := range []int{0, 3, headerSize, len(data) - 1} {
		_, err := ReadFilter(bytes.NewReader(data[:n]))
		require.ErrorIs(t, err, ErrInvalidFilterData, "length %d", n)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReadFilter_IOError(t *testing.T) {
	_, err := ReadFilter(failingReader{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidFilterData)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestMarshalBinary_NilFilter(t *testing.T) {
	var f *Filter
	_, err := f.MarshalBinary()
	require.ErrorIs(t, err, ErrInvalidArgument)
}
