package signalio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestWAV encodes raw integer frames with go-audio directly.
func writeTestWAV(t *testing.T, path string, rate, bitDepth, channels, format int, data []int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	enc := wav.NewEncoder(f, rate, bitDepth, channels, format)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}))
	require.NoError(t, enc.Close())
}

func TestWAVRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		bitDepth int
		delta    float64
	}{
		{"16bit", bitsPerSample16, 1.0 / maxInt16},
		{"24bit", bitsPerSample24, 1.0 / maxInt24},
		{"32bit", bitsPerSample32, 1e-7},
	}

	samples := make([]float32, 480)
	for i := range samples {
		samples[i] = float32(0.8 * math.Sin(2*math.Pi*440*float64(i)/48000))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "signal.wav")

			require.NoError(t, WriteFile(path, &Signal{Samples: samples, SampleRate: 48000, BitDepth: tt.bitDepth}))

			got, err := ReadFile(path)
			require.NoError(t, err)

			assert.Equal(t, 48000, got.SampleRate)
			assert.Equal(t, tt.bitDepth, got.BitDepth)
			require.Len(t, got.Samples, len(samples))
			for i := range samples {
				assert.InDelta(t, float64(samples[i]), float64(got.Samples[i]), tt.delta, "sample %d", i)
			}
		})
	}
}

func TestWriteWAV_ClampsAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clamp.wav")

	require.NoError(t, WriteFile(path, &Signal{Samples: []float32{2, -3, 0.5}}))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultRateHz, got.SampleRate)
	assert.Equal(t, bitsPerSample16, got.BitDepth)
	assert.InDeltaSlice(t, []float32{1, -1, 0.5}, got.Samples, 1.0/maxInt16)
}

func TestReadWAV_Stereo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeTestWAV(t, path, 44100, bitsPerSample16, 2, wavFormatPCM, []int{1, 2, 3, 4})

	_, err := ReadFile(path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadWAV_EightBit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "8bit.wav")
	writeTestWAV(t, path, 8000, 8, 1, wavFormatPCM, []int{128, 255, 0})

	_, err := ReadFile(path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadWAV_NotWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	_, err := ReadFile(path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteWAV_UnsupportedDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	err := WriteFile(path, &Signal{Samples: []float32{0}, SampleRate: 8000, BitDepth: 12})
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadFile_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n2.5\n"), 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2.5}, got.Samples)
	assert.Zero(t, got.SampleRate)
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile("/nonexistent/file.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestWriteFile_InvalidDirectory(t *testing.T) {
	err := WriteFile("/nonexistent/dir/out.txt", &Signal{Samples: []float32{1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestIsWAV(t *testing.T) {
	assert.True(t, IsWAV("a.wav"))
	assert.True(t, IsWAV("dir/B.WAV"))
	assert.False(t, IsWAV("a.txt"))
	assert.False(t, IsWAV("wav"))
}
