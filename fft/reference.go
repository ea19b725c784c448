package fft

import (
	dspfft "github.com/mjibson/go-dsp/fft"
)

// referenceTransform wraps mjibson/go-dsp, a library that performs a fresh
// transform on every call with no persistent plan. Construction is
// negligible, every call allocates its own result, and nothing is shared
// between a transform and its inverse, so calls are safe from concurrent
// goroutines on the same value.
type referenceTransform struct {
	transformBase
}

func newReferenceTransform(spec Spec, _ BackendConfig) (Transform, error) {
	return &referenceTransform{transformBase{spec}}, nil
}

// Inverse builds a fresh transform for the mirrored spec. There are no
// buffers to share.
func (t *referenceTransform) Inverse() Transform {
	return &referenceTransform{transformBase{t.spec.inverse()}}
}

// Transform computes the configured transform of x into a newly allocated
// array. The input is never aliased or mutated.
func (t *referenceTransform) Transform(x *Array) (*Array, error) {
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

func (t *referenceTransform) forwardComplex(x *Array) *Array {
	outer, n, inner := lineDims(t.spec.Shape, t.spec.Axis)
	res := zerosComplex(t.spec.FreqShape())
	line := make([]complex128, n)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			gatherComplex(line, x.cx, o, n, inner, i)
			scatterComplex(res.cx, dspfft.FFT(line), o, n, inner, i)
		}
	}
	scaleComplex(res.cx, forwardScale(t.spec.Norm, n))
	return res
}

func (t *referenceTransform) forwardReal(x *Array) *Array {
	outer, n, inner := lineDims(t.spec.Shape, t.spec.Axis)
	m := t.spec.FreqLen()
	res := zerosComplex(t.spec.FreqShape())
	line := make([]float64, n)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			gatherReal(line, x.re, o, n, inner, i)
			// FFTReal yields the full spectrum; only the non-redundant
			// half is kept.
			scatterComplex(res.cx, dspfft.FFTReal(line)[:m], o, m, inner, i)
		}
	}
	scaleComplex(res.cx, forwardScale(t.spec.Norm, n))
	return res
}

func (t *referenceTransform) backwardComplex(x *Array) *Array {
	outer, n, inner := lineDims(t.spec.Shape, t.spec.Axis)
	res := zerosComplex(t.spec.Shape)
	line := make([]complex128, n)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			gatherComplex(line, x.cx, o, n, inner, i)
			scatterComplex(res.cx, dspfft.IFFT(line), o, n, inner, i)
		}
	}
	// IFFT already divides by n.
	scaleComplex(res.cx, backwardScalePrediv(t.spec.Norm, n))
	return res
}

func (t *referenceTransform) backwardReal(x *Array) *Array {
	outer, n, inner := lineDims(t.spec.Shape, t.spec.Axis)
	m := t.spec.FreqLen()
	res := zerosReal(t.spec.Shape)
	half := make([]complex128, m)
	full := make([]complex128, n)
	line := make([]float64, n)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			gatherComplex(half, x.cx, o, m, inner, i)
			expandHermitian(full, half, n)
			out := dspfft.IFFT(full)
			for k := range line {
				line[k] = real(out[k])
			}
			scatterReal(res.re, line, o, n, inner, i)
		}
	}
	scaleReal(res.re, backwardScalePrediv(t.spec.Norm, n))
	return res
}
