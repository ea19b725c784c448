// Command fftinfo prints the configuration and frequency axis of an FFT
// transform as built by each registered backend.
//
// Usage:
//
//	fftinfo [flags] [backend ...]
//
// Without arguments it prints info for all registered backends.
//
// Examples:
//
//	fftinfo plan
//	fftinfo -n 1024 -rate 1000 reference plan
//	fftinfo -n 4096 -complex -norm ortho
//	fftinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/unit"

	"github.com/cwbudde/algo-baseband/fft"
)

func main() {
	n := flag.Int("n", 1024, "time-domain length in samples")
	rate := flag.Float64("rate", 0, "sample rate in Hz (0 = no frequency axis)")
	cmplx := flag.Bool("complex", false, "complex time-domain data instead of real")
	normName := flag.String("norm", "none", "normalization: none, unitary or ortho")
	bins := flag.Int("bins", 4, "number of leading frequency bins to print")
	list := flag.Bool("list", false, "list registered backend names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fftinfo [flags] [backend ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints transform configuration per FFT backend.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all backends.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fftinfo plan\n")
		fmt.Fprintf(os.Stderr, "  fftinfo -n 1024 -rate 1000 reference plan\n")
		fmt.Fprintf(os.Stderr, "  fftinfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, name := range fft.Backends() {
			fmt.Println(name)
		}
		return
	}

	norm, err := parseNorm(*normName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = fft.Backends()
	}

	kind := fft.KindReal
	if *cmplx {
		kind = fft.KindComplex
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Backend\tTime\tFreq\tNorm\tBin width\n")
	fmt.Fprintf(tw, "-------\t----\t----\t----\t---------\n")

	failed := false
	for _, name := range names {
		if err := printBackend(tw, name, *n, kind, norm, *rate, *bins); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", name, err)
			failed = true
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	if failed {
		os.Exit(1)
	}
}

func parseNorm(name string) (fft.Norm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return fft.NormNone, nil
	case "unitary":
		return fft.NormUnitary, nil
	case "ortho":
		return fft.NormOrtho, nil
	default:
		return 0, fmt.Errorf("unknown normalization %q (use none, unitary or ortho)", name)
	}
}

func printBackend(tw *tabwriter.Writer, name string, n int, kind fft.Kind, norm fft.Norm, rate float64, bins int) error {
	maker, err := fft.NewMaker(name)
	if err != nil {
		return err
	}

	opts := []fft.Option{fft.WithNorm(norm)}
	if rate > 0 {
		opts = append(opts, fft.WithSampleRate(unit.Frequency(rate)))
	}

	ft, err := maker.New([]int{n}, kind, opts...)
	if err != nil {
		return err
	}

	spec := ft.Spec()
	binWidth := "-"
	freqInfo := fmt.Sprintf("%v %v", spec.FreqShape(), spec.FreqKind())

	if freqs, err := ft.Frequencies(); err == nil && len(freqs) > 1 {
		binWidth = fmt.Sprintf("%g Hz", float64(freqs[1]))
		head := make([]string, 0, bins)
		for k := 0; k < bins && k < len(freqs); k++ {
			head = append(head, fmt.Sprintf("%g", float64(freqs[k])))
		}
		freqInfo += fmt.Sprintf(" [%s ...]", strings.Join(head, " "))
	}

	fmt.Fprintf(tw, "%s\t%v %v\t%s\t%v\t%s\n",
		name, spec.Shape, spec.Kind, freqInfo, spec.Norm, binWidth)
	return nil
}
