// Command firfilter designs windowed-sinc FIR filters, stores them in a
// binary filter file, and applies them to signal files.
//
// Usage:
//
//	firfilter create lowpass hanning 1000 11 8000 lp.fir
//	firfilter apply input.txt lp.fir output.txt
//	firfilter apply -v input.wav lp.fir output.wav
//	firfilter info lp.fir
//	firfilter destroy lp.fir
//
// Signal files are text with one sample per line, or mono PCM WAV when the
// path ends in .wav.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// errUsage marks malformed command lines; the usage text has already been
// printed when it is returned.
var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return errUsage
	}

	switch args[0] {
	case "create":
		return runCreate(args[1:], stdout, stderr)
	case "apply":
		return runApply(args[1:], stdout, stderr)
	case "destroy":
		return runDestroy(args[1:], stdout, stderr)
	case "info":
		return runInfo(args[1:], stdout, stderr)
	default:
		printUsage(stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func printUsage(w io.Writer) {
	prog := "firfilter"
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  %s create [-v] [-bessel-terms N] <filter_type> <window_type> <cutoff_freq> <kernel_length> <sample_rate> <output_file>\n", prog)
	fmt.Fprintf(w, "  %s apply [-v] <input_file> <filter_file> <output_file>\n", prog)
	fmt.Fprintf(w, "  %s destroy <filter_file>\n", prog)
	fmt.Fprintf(w, "  %s info [-points N] [-table] <filter_file>\n", prog)
	fmt.Fprintf(w, "\nCommands:\n")
	fmt.Fprintf(w, "  create    Create a FIR filter and save it to a file\n")
	fmt.Fprintf(w, "  apply     Apply a FIR filter to an input signal\n")
	fmt.Fprintf(w, "  destroy   Destroy a FIR filter (delete the filter file)\n")
	fmt.Fprintf(w, "  info      Print the parameters and frequency response of a filter file\n")
	fmt.Fprintf(w, "\nOptions:\n")
	fmt.Fprintf(w, "  <filter_type>   : lowpass or highpass\n")
	fmt.Fprintf(w, "  <window_type>   : rect, hanning, hamming, blackman, kaiser_b6, kaiser_b8, kaiser_b10\n")
	fmt.Fprintf(w, "  <cutoff_freq>   : Cutoff frequency in Hz\n")
	fmt.Fprintf(w, "  <kernel_length> : Kernel length (even values are rounded up to odd)\n")
	fmt.Fprintf(w, "  <sample_rate>   : Sample rate in Hz\n")
	fmt.Fprintf(w, "  <input_file>    : Input signal (text, one float per line, or mono .wav)\n")
	fmt.Fprintf(w, "  <output_file>   : Output signal (text, one float per line, or .wav)\n")
	fmt.Fprintf(w, "  <filter_file>   : Binary filter file\n")
}

// newLogger returns a logger that discards everything unless verbose is set.
func newLogger(stderr io.Writer, verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(stderr, "", log.LstdFlags)
}
