// Package spectrum derives magnitude, power and power-spectral-density
// estimates from FFT output, independent of which backend produced it and of
// the normalization convention the transform was built with.
package spectrum

import (
	"fmt"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/unit"

	"github.com/cwbudde/algo-baseband/fft"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
// All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
// All three slices must have the same length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// PSD applies the forward transform t to x and returns the one-sided power
// spectral density in units of power per hertz. The result is independent of
// the transform's normalization convention: the convention is read from the
// spec and divided back out before scaling by 1/(n*fs).
//
// t must be a forward transform of 1-D real data built with a sample rate;
// x must match its input shape.
func PSD(t fft.Transform, x *fft.Array) ([]float64, error) {
	spec := t.Spec()
	if spec.Direction != fft.Forward || spec.Kind != fft.KindReal || len(spec.Shape) != 1 {
		return nil, fmt.Errorf("spectrum: PSD requires a forward 1-D real transform, have %v", t)
	}

	coeff, err := t.Transform(x)
	if err != nil {
		return nil, fmt.Errorf("spectrum: PSD transform: %w", err)
	}

	return FromSpectrum(coeff.Complex(), spec.Norm, spec.AxisLen(), spec.SampleRate)
}

// FromSpectrum computes the one-sided PSD from an already-transformed
// half-spectrum of a length-n real signal. norm names the convention the
// coefficients were scaled with; rate is the time-domain sample rate.
//
// Interior bins are doubled to account for the redundant negative-frequency
// half; the DC bin and, for even n, the Nyquist bin are not.
func FromSpectrum(coeff []complex128, norm fft.Norm, n int, rate unit.Frequency) ([]float64, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("spectrum: PSD requires a positive sample rate, have %v", float64(rate))
	}
	if want := n/2 + 1; len(coeff) != want {
		return nil, fmt.Errorf("spectrum: %d bins for time length %d (want %d)", len(coeff), n, want)
	}

	psd := Power(coeff)

	// Undo the transform's power scale (n for ortho, n^2 for unitary),
	// then form the density.
	undo := 1.0
	switch norm {
	case fft.NormOrtho:
		undo = float64(n)
	case fft.NormUnitary:
		undo = float64(n) * float64(n)
	}
	s := undo / (float64(n) * float64(rate))
	for k := range psd {
		psd[k] *= s
	}

	last := len(psd) - 1
	for k := 1; k < last; k++ {
		psd[k] *= 2
	}
	if n%2 != 0 {
		// Odd n has no Nyquist bin; the top bin is interior too.
		psd[last] *= 2
	}
	return psd, nil
}
