package spectrum

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/unit"

	"github.com/cwbudde/algo-baseband/fft"
)

const tolerance = 1e-9

func TestMagnitudeAndPower(t *testing.T) {
	in := []complex128{3 + 4i, 0, -2i, 1}

	mag := Magnitude(in)
	wantMag := []float64{5, 0, 2, 1}
	for i := range wantMag {
		if math.Abs(mag[i]-wantMag[i]) > tolerance {
			t.Fatalf("magnitude[%d]: %g, want %g", i, mag[i], wantMag[i])
		}
	}

	pow := Power(in)
	wantPow := []float64{25, 0, 4, 1}
	for i := range wantPow {
		if math.Abs(pow[i]-wantPow[i]) > tolerance {
			t.Fatalf("power[%d]: %g, want %g", i, pow[i], wantPow[i])
		}
	}

	if Magnitude(nil) != nil || Power(nil) != nil {
		t.Fatalf("empty input should yield nil")
	}
}

func TestPhase(t *testing.T) {
	in := []complex128{1, 1i, -1}
	want := []float64{0, math.Pi / 2, math.Pi}
	for i, p := range Phase(in) {
		if math.Abs(p-want[i]) > tolerance {
			t.Fatalf("phase[%d]: %g, want %g", i, p, want[i])
		}
	}
}

// sineBlock returns n samples of a unit sine at the given bin frequency.
func sineBlock(n, bin int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * float64(bin) * float64(i) / float64(n))
	}
	return x
}

func TestPSDNormIndependence(t *testing.T) {
	const n = 64
	rate := 8000 * unit.Hertz

	x, err := fft.NewReal([]int{n}, sineBlock(n, 5))
	if err != nil {
		t.Fatalf("NewReal: %v", err)
	}

	var ref []float64
	for _, norm := range []fft.Norm{fft.NormNone, fft.NormUnitary, fft.NormOrtho} {
		maker, err := fft.NewMaker("reference")
		if err != nil {
			t.Fatalf("NewMaker: %v", err)
		}
		ft, err := maker.New([]int{n}, fft.KindReal,
			fft.WithNorm(norm), fft.WithSampleRate(rate))
		if err != nil {
			t.Fatalf("maker.New: %v", err)
		}

		psd, err := PSD(ft, x)
		if err != nil {
			t.Fatalf("PSD(%v): %v", norm, err)
		}
		if ref == nil {
			ref = psd
			continue
		}
		for k := range ref {
			if math.Abs(psd[k]-ref[k]) > tolerance {
				t.Fatalf("norm %v bin %d: %g, want %g", norm, k, psd[k], ref[k])
			}
		}
	}
}

func TestPSDParseval(t *testing.T) {
	// The integrated density must equal the mean power of the block.
	const n = 128
	rate := 1000 * unit.Hertz

	x := sineBlock(n, 3)
	for i := range x {
		x[i] += 0.25 * math.Cos(2*math.Pi*17*float64(i)/float64(n))
	}
	meanPower := 0.0
	for _, v := range x {
		meanPower += v * v
	}
	meanPower /= float64(n)

	arr, _ := fft.NewReal([]int{n}, x)
	maker, _ := fft.NewMaker("gonum")
	ft, err := maker.New([]int{n}, fft.KindReal, fft.WithSampleRate(rate))
	if err != nil {
		t.Fatalf("maker.New: %v", err)
	}

	psd, err := PSD(ft, arr)
	if err != nil {
		t.Fatalf("PSD: %v", err)
	}

	df := float64(rate) / float64(n)
	integrated := 0.0
	for _, p := range psd {
		integrated += p * df
	}
	if math.Abs(integrated-meanPower) > 1e-9 {
		t.Fatalf("integrated PSD %g, want mean power %g", integrated, meanPower)
	}
}

func TestPSDErrors(t *testing.T) {
	maker, _ := fft.NewMaker("reference")

	// No sample rate.
	ft, _ := maker.New([]int{16}, fft.KindReal)
	x, _ := fft.NewReal([]int{16}, make([]float64, 16))
	if _, err := PSD(ft, x); err == nil {
		t.Fatalf("expected error without sample rate")
	}

	// Complex input has no one-sided density here.
	cft, _ := maker.New([]int{16}, fft.KindComplex, fft.WithSampleRate(unit.Hertz))
	cx, _ := fft.NewComplex([]int{16}, make([]complex128, 16))
	if _, err := PSD(cft, cx); err == nil {
		t.Fatalf("expected error for complex transform")
	}

	// Bin count must match the time length.
	if _, err := FromSpectrum(make([]complex128, 5), fft.NormNone, 16, unit.Hertz); err == nil {
		t.Fatalf("expected error for wrong bin count")
	}
}
