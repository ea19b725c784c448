package fft

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"
)

// Transform applies one direction of one configured FFT. Implementations are
// immutable after construction; any expensive backend setup (planning, buffer
// allocation) happens exactly once when the Maker builds the transform.
type Transform interface {
	// Transform applies the FFT to x, which must match the configured input
	// shape and element kind exactly; otherwise ErrShapeMismatch is
	// returned. Whether the result is freshly allocated or a reused
	// backend-owned buffer depends on the backend; see the package
	// documentation.
	Transform(x *Array) (*Array, error)

	// Inverse returns the structurally paired reverse-direction transform.
	// Backends with persistent buffers share them with the pair.
	Inverse() Transform

	// Spec returns the transform configuration.
	Spec() Spec

	// Frequencies returns the physical frequency of each bin along the
	// transformed axis: k/(n·Δt) for k = 0..FreqLen-1. It fails with
	// ErrNoSampleRate when the transform was built without a sample rate.
	Frequencies() ([]unit.Frequency, error)

	fmt.Stringer
}

// transformBase carries the spec and the backend-independent behavior shared
// by all adapters: frequency-axis computation, input validation and the
// diagnostic representation.
type transformBase struct {
	spec Spec
}

func (t *transformBase) Spec() Spec { return t.spec }

func (t *transformBase) Frequencies() ([]unit.Frequency, error) {
	if t.spec.SampleRate == 0 {
		return nil, fmt.Errorf("%w: frequency axis undefined", ErrNoSampleRate)
	}
	n := t.spec.AxisLen()
	freqs := make([]unit.Frequency, t.spec.FreqLen())
	for k := range freqs {
		freqs[k] = t.spec.SampleRate * unit.Frequency(float64(k)/float64(n))
	}
	return freqs, nil
}

func (t *transformBase) String() string {
	return fmt.Sprintf("fft.Transform(%v)", t.spec)
}

// checkInput validates that x matches the spec's input side.
func (t *transformBase) checkInput(x *Array) error {
	if x == nil {
		return fmt.Errorf("%w: nil array", ErrShapeMismatch)
	}
	if want := t.spec.InKind(); x.Kind() != want {
		return fmt.Errorf("%w: got %v data, want %v", ErrShapeMismatch, x.Kind(), want)
	}
	if want := t.spec.InShape(); !shapeEqual(x.shape, want) {
		return fmt.Errorf("%w: got shape %v, want %v", ErrShapeMismatch, x.shape, want)
	}
	return nil
}

// Scale factors relative to the raw (unnormalized) DFT. n is always the full
// time-domain axis length. Libraries whose inverse already divides by n
// (go-dsp IFFT, algo-fft Plan.Inverse) use backwardScalePrediv instead of
// backwardScaleRaw so the exact factors compose without rounding detours.

func forwardScale(norm Norm, n int) float64 {
	switch norm {
	case NormUnitary:
		return 1 / float64(n)
	case NormOrtho:
		return 1 / math.Sqrt(float64(n))
	default:
		return 1
	}
}

func backwardScaleRaw(norm Norm, n int) float64 {
	switch norm {
	case NormNone:
		return 1 / float64(n)
	case NormOrtho:
		return 1 / math.Sqrt(float64(n))
	default:
		return 1
	}
}

func backwardScalePrediv(norm Norm, n int) float64 {
	switch norm {
	case NormUnitary:
		return float64(n)
	case NormOrtho:
		return math.Sqrt(float64(n))
	default:
		return 1
	}
}

func scaleReal(data []float64, s float64) {
	if s == 1 {
		return
	}
	for i := range data {
		data[i] *= s
	}
}

func scaleComplex(data []complex128, s float64) {
	if s == 1 {
		return
	}
	c := complex(s, 0)
	for i := range data {
		data[i] *= c
	}
}

// lineDims decomposes a row-major shape into the iteration bounds for
// walking all 1-D lines along axis: outer blocks of n strided elements,
// inner contiguous repeats. The element k of line (o, i) lives at
// o*n*inner + k*inner + i.
func lineDims(shape []int, axis int) (outer, n, inner int) {
	outer, inner = 1, 1
	for _, d := range shape[:axis] {
		outer *= d
	}
	n = shape[axis]
	for _, d := range shape[axis+1:] {
		inner *= d
	}
	return outer, n, inner
}

func gatherComplex(dst, src []complex128, o, n, inner, i int) {
	base := o*n*inner + i
	for k := 0; k < n; k++ {
		dst[k] = src[base+k*inner]
	}
}

func scatterComplex(dst, src []complex128, o, n, inner, i int) {
	base := o*n*inner + i
	for k := 0; k < n; k++ {
		dst[base+k*inner] = src[k]
	}
}

func gatherReal(dst, src []float64, o, n, inner, i int) {
	base := o*n*inner + i
	for k := 0; k < n; k++ {
		dst[k] = src[base+k*inner]
	}
}

func scatterReal(dst, src []float64, o, n, inner, i int) {
	base := o*n*inner + i
	for k := 0; k < n; k++ {
		dst[base+k*inner] = src[k]
	}
}

// expandHermitian reconstructs the full length-n spectrum from its
// non-redundant half (n/2+1 bins): full[n-k] = conj(half[k]). This is the
// exact structural inverse of truncating a real-input spectrum, used by the
// backends whose library has no native half-spectrum inverse.
func expandHermitian(full []complex128, half []complex128, n int) {
	m := len(half)
	full[0] = half[0]
	for k := 1; k < m; k++ {
		full[k] = half[k]
	}
	for k := 1; k <= n-m; k++ {
		full[n-k] = complex(real(half[k]), -imag(half[k]))
	}
}
