package signalio

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	monoChannels  = 1
	wavFormatPCM  = 1
	defaultDepth  = bitsPerSample16
	defaultRateHz = 44100

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Full-scale values for normalization
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// getMaxValue returns the full-scale sample value for a bit depth, or 0 if
// the depth is not supported.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return 0
	}
}

// ReadWAV decodes a mono integer PCM WAV stream into samples normalized to
// [-1, 1]. Multi-channel, float and 8-bit files are rejected with
// ErrUnsupportedFormat.
func ReadWAV(r io.ReadSeeker) (*Signal, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: not a valid WAV file", ErrUnsupportedFormat)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)

	if format.NumChannels != monoChannels {
		return nil, fmt.Errorf("%w: %d channels (only mono is supported)", ErrUnsupportedFormat, format.NumChannels)
	}
	if decoder.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: WAV format tag %d (only integer PCM is supported)", ErrUnsupportedFormat, decoder.WavAudioFormat)
	}

	maxVal := getMaxValue(bitDepth)
	if maxVal == 0 {
		return nil, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	invMaxVal := 1.0 / maxVal
	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float32(float64(v) * invMaxVal)
	}

	return &Signal{
		Samples:    samples,
		SampleRate: format.SampleRate,
		BitDepth:   bitDepth,
	}, nil
}

// WriteWAV encodes sig as mono integer PCM. Samples are clamped to [-1, 1].
// A zero SampleRate or BitDepth selects 44100 Hz or 16 bits.
func WriteWAV(w io.WriteSeeker, sig *Signal) error {
	rate := sig.SampleRate
	if rate <= 0 {
		rate = defaultRateHz
	}
	bitDepth := sig.BitDepth
	if bitDepth == 0 {
		bitDepth = defaultDepth
	}

	maxVal := getMaxValue(bitDepth)
	if maxVal == 0 {
		return fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}

	data := make([]int, len(sig.Samples))
	for i, s := range sig.Samples {
		sample := max(-1.0, min(1.0, float64(s)))
		data[i] = int(sample * maxVal)
	}

	encoder := wav.NewEncoder(w, rate, bitDepth, monoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return nil
}
