package signalio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	float32Bits = 32

	// Upper bound on a single line. Numbers are short; anything longer is
	// malformed input.
	maxLineSize = 64 * 1024
)

// ReadText parses one float per line.
//
// Leading spaces and tabs are skipped. A trailing carriage return is
// tolerated, so CRLF files parse. Any other character after the number, an
// empty line, or a value outside the float32 range is an error that wraps
// ErrInvalidSample and names the 1-based line number. An empty reader
// yields an empty, non-nil slice.
func ReadText(r io.Reader) ([]float32, error) {
	samples := []float32{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++

		text := strings.TrimLeft(scanner.Text(), " \t")
		text = strings.TrimSuffix(text, "\r")

		v, err := strconv.ParseFloat(text, float32Bits)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrInvalidSample, line, scanner.Text())
		}
		samples = append(samples, float32(v))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read signal: %w", err)
	}

	return samples, nil
}

// WriteText writes one sample per line using the shortest representation
// that reads back to the same float32.
func WriteText(w io.Writer, samples []float32) error {
	bw := bufio.NewWriter(w)

	var buf []byte
	for _, s := range samples {
		buf = strconv.AppendFloat(buf[:0], float64(s), 'g', -1, float32Bits)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("failed to write signal: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write signal: %w", err)
	}
	return nil
}
