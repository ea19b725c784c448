package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// planTransform wraps MeKo-Christian/algo-fft, which pays a one-time
// planning cost in exchange for fast repeated execution. The plan and one
// pair of line buffers are allocated at construction; every call copies the
// caller's data into the input buffer, runs the plan and writes into an
// output array owned by the transform.
//
// The returned array is the SAME object on every call and is overwritten by
// the next call on this transform or on its paired inverse, which shares the
// plan and the line buffers with their roles swapped. Callers that need a
// result beyond the next call must Clone it first. Calls on one
// transform/inverse pair must be serialized; independent transforms own
// independent buffers and may run in parallel.
type planTransform struct {
	transformBase
	plan *algofft.Plan[complex128]
	in   []complex128 // line input, aliases pair's output buffer
	out  []complex128 // line output, aliases pair's input buffer
	half []complex128 // half-spectrum scratch, real kind only
	res  *Array       // owned result, reused every call
	pair *planTransform
}

func newPlanTransform(spec Spec, _ BackendConfig) (Transform, error) {
	n := spec.AxisLen()
	plan, err := algofft.NewPlanT[complex128](n)
	if err != nil {
		return nil, fmt.Errorf("%w: plan for length %d: %v", ErrInvalidSpec, n, err)
	}
	t := &planTransform{
		transformBase: transformBase{spec},
		plan:          plan,
		in:            make([]complex128, n),
		out:           make([]complex128, n),
	}
	if spec.Kind == KindReal {
		t.half = make([]complex128, spec.FreqLen())
	}
	t.res = t.newResult()
	return t, nil
}

func (t *planTransform) newResult() *Array {
	if t.spec.OutKind() == KindReal {
		return zerosReal(t.spec.OutShape())
	}
	return zerosComplex(t.spec.OutShape())
}

// Inverse returns the paired reverse transform. The pair reuses the same
// plan and the same line buffers with input and output swapped, so a
// forward-then-inverse chain runs entirely in the memory allocated once at
// construction. Repeated calls return the same pair.
func (t *planTransform) Inverse() Transform {
	if t.pair == nil {
		t.pair = &planTransform{
			transformBase: transformBase{t.spec.inverse()},
			plan:          t.plan,
			in:            t.out,
			out:           t.in,
			half:          t.half,
		}
		t.pair.res = t.pair.newResult()
		t.pair.pair = t
	}
	return t.pair
}

// Transform runs the pre-built plan on x. The input is copied into the
// plan's buffer and never mutated; the result is the transform-owned array
// described in the type comment.
func (t *planTransform) Transform(x *Array) (*Array, error) {
	if err := t.checkInput(x); err != nil {
		return nil, err
	}
	var err error
	if t.spec.Direction == Forward {
		if t.spec.Kind == KindReal {
			err = t.forwardReal(x)
		} else {
			err = t.forwardComplex(x)
		}
	} else {
		if t.spec.Kind == KindReal {
			err = t.backwardReal(x)
		} else {
			err = t.backwardComplex(x)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("fft: plan execution: %w", err)
	}
	return t.res, nil
}

func (t *planTransform) forwardComplex(x *Array) error {
	outer, n, inner := lineDims(t.spec.Shape, t.spec.Axis)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			gatherComplex(t.in, x.cx, o, n, inner, i)
			if err := t.plan.Forward(t.out, t.in); err != nil {
				return err
			}
			scatterComplex(t.res.cx, t.out, o, n, inner, i)
		}
	}
	scaleComplex(t.res.cx, forwardScale(t.spec.Norm, n))
	return nil
}

func (t *planTransform) forwardReal(x *Array) error {
	outer, n, inner := lineDims(t.spec.Shape, t.spec.Axis)
	m := t.spec.FreqLen()
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			base := o*n*inner + i
			for k := 0; k < n; k++ {
				t.in[k] = complex(x.re[base+k*inner], 0)
			}
			if err := t.plan.Forward(t.out, t.in); err != nil {
				return err
			}
			scatterComplex(t.res.cx, t.out[:m], o, m, inner, i)
		}
	}
	scaleComplex(t.res.cx, forwardScale(t.spec.Norm, n))
	return nil
}

func (t *planTransform) backwardComplex(x *Array) error {
	outer, n, inner := lineDims(t.spec.Shape, t.spec.Axis)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			gatherComplex(t.in, x.cx, o, n, inner, i)
			if err := t.plan.Inverse(t.out, t.in); err != nil {
				return err
			}
			scatterComplex(t.res.cx, t.out, o, n, inner, i)
		}
	}
	// Plan.Inverse already divides by n.
	scaleComplex(t.res.cx, backwardScalePrediv(t.spec.Norm, n))
	return nil
}

func (t *planTransform) backwardReal(x *Array) error {
	outer, n, inner := lineDims(t.spec.Shape, t.spec.Axis)
	m := t.spec.FreqLen()
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			gatherComplex(t.half, x.cx, o, m, inner, i)
			expandHermitian(t.in, t.half, n)
			if err := t.plan.Inverse(t.out, t.in); err != nil {
				return err
			}
			base := o*n*inner + i
			for k := 0; k < n; k++ {
				t.res.re[base+k*inner] = real(t.out[k])
			}
		}
	}
	scaleReal(t.res.re, backwardScalePrediv(t.spec.Norm, n))
	return nil
}
