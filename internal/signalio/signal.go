// Package signalio reads and writes the sample files consumed and produced
// by the firfilter command: plain text with one sample per line, or mono
// PCM WAV.
package signalio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	wavExtension = ".wav"

	// Output file permissions for text signals
	textFileMode = 0o644
)

// Errors reported while decoding signals.
var (
	// ErrInvalidSample indicates a text line that is not a single number.
	ErrInvalidSample = errors.New("invalid sample")

	// ErrUnsupportedFormat indicates a WAV file this package cannot represent
	// as a single float32 channel.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// Signal is a mono sampled signal. SampleRate and BitDepth are zero for
// text signals, which carry no format information.
type Signal struct {
	Samples    []float32
	SampleRate int
	BitDepth   int
}

// IsWAV reports whether path names a WAV file.
func IsWAV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), wavExtension)
}

// ReadFile loads a signal, choosing the format from the file extension.
func ReadFile(path string) (*Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if IsWAV(path) {
		return ReadWAV(f)
	}

	samples, err := ReadText(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Signal{Samples: samples}, nil
}

// WriteFile stores a signal, choosing the format from the file extension.
// WAV output uses sig.SampleRate and sig.BitDepth, which must be set.
func WriteFile(path string, sig *Signal) (err error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, textFileMode)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	if IsWAV(path) {
		return WriteWAV(f, sig)
	}
	return WriteText(f, sig.Samples)
}
