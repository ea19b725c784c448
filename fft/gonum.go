package fft

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// gonumTransform wraps gonum/dsp/fourier, which precomputes twiddle factors
// in a reusable FFT object at construction. Results are freshly allocated on
// every call, but the fourier object carries internal scratch, so calls on
// one transform (or its paired inverse, which shares the object) must be
// serialized.
type gonumTransform struct {
	transformBase
	rfft *fourier.FFT
	cfft *fourier.CmplxFFT
	pair *gonumTransform
}

func newGonumTransform(spec Spec, _ BackendConfig) (Transform, error) {
	t := &gonumTransform{transformBase: transformBase{spec}}
	if spec.Kind == KindReal {
		t.rfft = fourier.NewFFT(spec.AxisLen())
	} else {
		t.cfft = fourier.NewCmplxFFT(spec.AxisLen())
	}
	return t, nil
}

// Inverse returns the paired reverse transform, reusing the precomputed
// twiddle object. Repeated calls return the same pair.
func (t *gonumTransform) Inverse() Transform {
	if t.pair == nil {
		t.pair = &gonumTransform{
			transformBase: transformBase{t.spec.inverse()},
			rfft:          t.rfft,
			cfft:          t.cfft,
		}
		t.pair.pair = t
	}
	return t.pair
}

// Transform computes the configured transform of x into a newly allocated
// array. The input is never aliased or mutated.
func (t *gonumTransform) Transform(x *Array) (*Array, error) {
	if err := t.checkInput(x); err != nil {
		return nil, err
	}
	if t.spec.Direction == Forward {
		if t.spec.Kind == KindReal {
			return t.forwardReal(x), nil
		}
		return t.forwardComplex(x), nil
	}
	if t.spec.Kind == KindReal {
		return t.backwardReal(x), nil
	}
	return t.backwardComplex(x), nil
}

func (t *gonumTransform) forwardReal(x *Array) *Array {
	outer, n, inner := lineDims(t.spec.Shape, t.spec.Axis)
	m := t.spec.FreqLen()
	res := zerosComplex(t.spec.FreqShape())
	line := make([]float64, n)
	coeff := make([]complex128, m)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			gatherReal(line, x.re, o, n, inner, i)
			t.rfft.Coefficients(coeff, line)
			scatterComplex(res.cx, coeff, o, m, inner, i)
		}
	}
	scaleComplex(res.cx, forwardScale(t.spec.Norm, n))
	return res
}

func (t *gonumTransform) forwardComplex(x *Array) *Array {
	outer, n, inner := lineDims(t.spec.Shape, t.spec.Axis)
	res := zerosComplex(t.spec.FreqShape())
	line := make([]complex128, n)
	coeff := make([]complex128, n)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			gatherComplex(line, x.cx, o, n, inner, i)
			t.cfft.Coefficients(coeff, line)
			scatterComplex(res.cx, coeff, o, n, inner, i)
		}
	}
	scaleComplex(res.cx, forwardScale(t.spec.Norm, n))
	return res
}

func (t *gonumTransform) backwardReal(x *Array) *Array {
	outer, n, inner := lineDims(t.spec.Shape, t.spec.Axis)
	m := t.spec.FreqLen()
	res := zerosReal(t.spec.Shape)
	half := make([]complex128, m)
	line := make([]float64, n)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			gatherComplex(half, x.cx, o, m, inner, i)
			t.rfft.Sequence(line, half)
			scatterReal(res.re, line, o, n, inner, i)
		}
	}
	// Sequence is unnormalized.
	scaleReal(res.re, backwardScaleRaw(t.spec.Norm, n))
	return res
}

func (t *gonumTransform) backwardComplex(x *Array) *Array {
	outer, n, inner := lineDims(t.spec.Shape, t.spec.Axis)
	res := zerosComplex(t.spec.Shape)
	line := make([]complex128, n)
	seq := make([]complex128, n)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			gatherComplex(line, x.cx, o, n, inner, i)
			t.cfft.Sequence(seq, line)
			scatterComplex(res.cx, seq, o, n, inner, i)
		}
	}
	scaleComplex(res.cx, backwardScaleRaw(t.spec.Norm, n))
	return res
}
