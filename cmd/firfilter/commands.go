package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	fir "github.com/AsmanHud/fir-filter"
	"github.com/AsmanHud/fir-filter/internal/signalio"
	"github.com/AsmanHud/fir-filter/internal/simdops"
)

// newFlagSet returns a subcommand flag set that reports problems on stderr
// and leaves exiting to main.
func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }
	return fs
}

// parseArgs parses flags and checks the positional argument count.
func parseArgs(fs *flag.FlagSet, args []string, want int, stderr io.Writer) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errUsage, fs.Name(), err)
	}
	if fs.NArg() != want {
		printUsage(stderr)
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d", errUsage, fs.Name(), want, fs.NArg())
	}
	return fs.Args(), nil
}

// usageError prints usage and reports a malformed argument.
func usageError(stderr io.Writer, format string, args ...any) error {
	printUsage(stderr)
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

func runCreate(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("create", stderr)
	verbose := fs.Bool("v", false, "Verbose output")
	besselTerms := fs.Int("bessel-terms", 0, "Power series terms for the Kaiser I0 approximation (0 = default)")

	pos, err := parseArgs(fs, args, createArgs, stderr)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, *verbose)

	kind, err := fir.ParseKind(pos[0])
	if err != nil {
		return usageError(stderr, "invalid filter type: %s", pos[0])
	}
	window, err := fir.ParseWindow(pos[1])
	if err != nil {
		return usageError(stderr, "invalid window type: %s", pos[1])
	}
	cutoff, err := strconv.ParseFloat(pos[2], 32)
	if err != nil {
		return usageError(stderr, "invalid cutoff frequency: %s", pos[2])
	}
	kernelLength, err := strconv.Atoi(pos[3])
	if err != nil {
		return usageError(stderr, "invalid kernel length: %s", pos[3])
	}
	sampleRate, err := strconv.ParseFloat(pos[4], 32)
	if err != nil {
		return usageError(stderr, "invalid sample rate: %s", pos[4])
	}
	outputPath := pos[5]

	params := fir.Params{
		Kind:            kind,
		Window:          window,
		CutoffFrequency: cutoff,
		KernelLength:    kernelLength,
		SampleRate:      sampleRate,
		BesselTerms:     *besselTerms,
	}
	logger.Printf("Designing %s filter: window=%s cutoff=%g Hz length=%d rate=%g Hz",
		kind, window, cutoff, kernelLength, sampleRate)

	f, err := fir.Design(params)
	if err != nil {
		return fmt.Errorf("failed to create FIR filter: %w", err)
	}
	if f.KernelLength() != kernelLength {
		logger.Printf("Kernel length rounded up to %d", f.KernelLength())
	}

	if err := saveFilter(outputPath, f); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Created %s %s filter (%d taps) -> %s\n",
		f.Kind(), f.Window(), f.KernelLength(), filepath.Base(outputPath))
	return nil
}

func saveFilter(path string, f *fir.Filter) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filterFileMode)
	if err != nil {
		return fmt.Errorf("failed to open filter file for writing: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close filter file: %w", closeErr)
		}
	}()

	if _, err := f.WriteTo(file); err != nil {
		return err
	}
	return nil
}

func loadFilter(path string) (*fir.Filter, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open filter file for reading: %w", err)
	}
	defer func() { _ = file.Close() }()

	f, err := fir.ReadFilter(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func runApply(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("apply", stderr)
	verbose := fs.Bool("v", false, "Verbose output")

	pos, err := parseArgs(fs, args, applyArgs, stderr)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, *verbose)
	inputPath, filterPath, outputPath := pos[0], pos[1], pos[2]

	sig, err := signalio.ReadFile(inputPath)
	if err != nil {
		return err
	}
	logger.Printf("Input: %s (%d samples)", inputPath, len(sig.Samples))

	f, err := loadFilter(filterPath)
	if err != nil {
		return err
	}
	logger.Printf("Filter: %s %s, %d taps, cutoff %g Hz @ %g Hz",
		f.Kind(), f.Window(), f.KernelLength(), f.CutoffFrequency(), f.SampleRate())
	logger.Printf("SIMD: %s", simdops.Info())

	if sig.SampleRate != 0 && float32(sig.SampleRate) != f.SampleRate() {
		logger.Printf("Warning: input sample rate %d Hz differs from filter design rate %g Hz",
			sig.SampleRate, f.SampleRate())
	}

	filtered, err := f.Apply(sig.Samples)
	if err != nil {
		return fmt.Errorf("failed to apply filter: %w", err)
	}

	out := &signalio.Signal{
		Samples:    filtered,
		SampleRate: sig.SampleRate,
		BitDepth:   sig.BitDepth,
	}
	if out.SampleRate == 0 {
		out.SampleRate = int(f.SampleRate())
	}
	if out.BitDepth == 0 {
		out.BitDepth = defaultWAVBitDepth
	}

	if err := signalio.WriteFile(outputPath, out); err != nil {
		return err
	}
	logger.Printf("Output: %s (%d samples)", outputPath, len(filtered))

	fmt.Fprintf(stdout, "Filtered %s -> %s (%d samples)\n",
		filepath.Base(inputPath), filepath.Base(outputPath), len(filtered))
	return nil
}

func runDestroy(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("destroy", stderr)

	pos, err := parseArgs(fs, args, destroyArgs, stderr)
	if err != nil {
		return err
	}
	path := pos[0]

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete filter file: %w", err)
	}

	fmt.Fprintf(stdout, "Successfully deleted filter file: %s\n", path)
	return nil
}

func runInfo(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("info", stderr)
	points := fs.Int("points", fir.DefaultResponsePoints, "Frequency points evaluated from DC to Nyquist")
	table := fs.Bool("table", false, "Print the magnitude response table")

	pos, err := parseArgs(fs, args, infoArgs, stderr)
	if err != nil {
		return err
	}
	if *points <= 0 {
		return usageError(stderr, "invalid number of points: %d", *points)
	}

	f, err := loadFilter(pos[0])
	if err != nil {
		return err
	}

	resp, err := f.FrequencyResponse(*points)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Filter: %s\n", filepath.Base(pos[0]))
	fmt.Fprintf(stdout, "  Type:          %s\n", f.Kind())
	fmt.Fprintf(stdout, "  Window:        %s\n", f.Window())
	fmt.Fprintf(stdout, "  Cutoff:        %g Hz\n", f.CutoffFrequency())
	fmt.Fprintf(stdout, "  Sample rate:   %g Hz\n", f.SampleRate())
	fmt.Fprintf(stdout, "  Kernel length: %d taps\n", f.KernelLength())
	fmt.Fprintf(stdout, "  Latency:       %d samples\n", f.Latency())
	fmt.Fprintf(stdout, "Response (%d points):\n", len(resp.Frequencies))
	fmt.Fprintf(stdout, "  DC gain:       %.6f (%.2f dB)\n", resp.DCGain, fir.MagnitudeDB(resp.DCGain))
	fmt.Fprintf(stdout, "  Cutoff gain:   %.6f (%.2f dB)\n", resp.CutoffGain, fir.MagnitudeDB(resp.CutoffGain))
	fmt.Fprintf(stdout, "  Peak gain:     %.6f at %.1f Hz\n", resp.PeakGain, resp.PeakFrequency)
	fmt.Fprintf(stdout, "  Min gain:      %.2f dB\n", fir.MagnitudeDB(resp.MinGain))
	if f.Window().Beta() > 0 {
		fmt.Fprintf(stdout, "  Kaiser β:      %g (≈%.1f dB stopband)\n", f.Window().Beta(), resp.KaiserAttenuationDB)
	}

	if *table {
		fmt.Fprintf(stdout, "\n%12s %12s %12s\n", "freq_hz", "gain_db", "phase_rad")
		for i, freq := range resp.Frequencies {
			fmt.Fprintf(stdout, "%12.2f %12.2f %12.4f\n", freq, fir.MagnitudeDB(resp.Magnitude[i]), resp.Phase[i])
		}
	}

	return nil
}
