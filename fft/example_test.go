package fft_test

import (
	"fmt"

	"gonum.org/v1/gonum/unit"

	"github.com/cwbudde/algo-baseband/fft"
)

func ExampleNewMaker() {
	maker, err := fft.NewMaker("reference")
	if err != nil {
		fmt.Println(err)
		return
	}

	ft, err := maker.New([]int{1000}, fft.KindReal,
		fft.WithSampleRate(1000*unit.Hertz))
	if err != nil {
		fmt.Println(err)
		return
	}

	freqs, _ := ft.Frequencies()
	fmt.Printf("%d bins, bin width %.0f Hz\n", len(freqs), float64(freqs[1]))

	// Output:
	// 501 bins, bin width 1 Hz
}

func ExampleTransform_Inverse() {
	maker, _ := fft.NewMaker("plan")
	ft, _ := maker.New([]int{4}, fft.KindReal, fft.WithOrtho())

	x, _ := fft.NewReal([]int{4}, []float64{1, 2, 3, 4})
	spec, _ := ft.Transform(x)
	back, _ := ft.Inverse().Transform(spec)

	r := back.Real()
	fmt.Printf("%.1f %.1f %.1f %.1f\n", r[0], r[1], r[2], r[3])

	// Output:
	// 1.0 2.0 3.0 4.0
}

func ExampleBackends() {
	for _, name := range fft.Backends() {
		fmt.Println(name)
	}

	// Output:
	// gonum
	// plan
	// reference
}
