package spectrum_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"

	"github.com/cwbudde/algo-baseband/fft"
	"github.com/cwbudde/algo-baseband/spectrum"
)

func ExamplePSD() {
	const n = 8
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 2 * float64(i) / n)
	}

	maker, _ := fft.NewMaker("reference")
	ft, _ := maker.New([]int{n}, fft.KindReal,
		fft.WithSampleRate(8*unit.Hertz))

	arr, _ := fft.NewReal([]int{n}, x)
	psd, _ := spectrum.PSD(ft, arr)

	// All power of a unit sine sits in one bin: mean power 0.5 over a
	// 1 Hz bin width.
	fmt.Printf("psd[2] = %.1f\n", psd[2])

	// Output:
	// psd[2] = 0.5
}

func ExampleMagnitude() {
	mag := spectrum.Magnitude([]complex128{3 + 4i, 1i})
	fmt.Printf("%.0f %.0f\n", mag[0], mag[1])

	// Output:
	// 5 1
}
