package fft

import "fmt"

// Kind identifies the element kind of a time- or frequency-domain array.
type Kind int

const (
	// KindReal marks float64-valued data.
	KindReal Kind = iota
	// KindComplex marks complex128-valued data.
	KindComplex
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Array is a minimal n-dimensional row-major container holding either real
// or complex samples. It is the common currency passed to and returned from
// transforms; no backend depends on any richer array abstraction.
//
// Constructors wrap the provided slice without copying. Transforms never
// mutate their input array, but the "plan" backend returns arrays whose
// backing it owns and reuses (see the package documentation).
type Array struct {
	shape []int
	re    []float64
	cx    []complex128
}

// NewReal wraps data as a real-valued array of the given shape.
// len(data) must equal the product of the dimensions.
func NewReal(shape []int, data []float64) (*Array, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: %d samples for shape %v (want %d)", ErrShapeMismatch, len(data), shape, n)
	}
	return &Array{shape: append([]int(nil), shape...), re: data}, nil
}

// NewComplex wraps data as a complex-valued array of the given shape.
// len(data) must equal the product of the dimensions.
func NewComplex(shape []int, data []complex128) (*Array, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: %d samples for shape %v (want %d)", ErrShapeMismatch, len(data), shape, n)
	}
	return &Array{shape: append([]int(nil), shape...), cx: data}, nil
}

func zerosReal(shape []int) *Array {
	return &Array{shape: append([]int(nil), shape...), re: make([]float64, sizeOf(shape))}
}

func zerosComplex(shape []int) *Array {
	return &Array{shape: append([]int(nil), shape...), cx: make([]complex128, sizeOf(shape))}
}

// Shape returns a copy of the array dimensions.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Kind reports whether the array holds real or complex samples.
func (a *Array) Kind() Kind {
	if a.cx != nil {
		return KindComplex
	}
	return KindReal
}

// Len returns the total number of samples.
func (a *Array) Len() int { return sizeOf(a.shape) }

// Real returns the backing slice of a real array, or nil for complex arrays.
func (a *Array) Real() []float64 { return a.re }

// Complex returns the backing slice of a complex array, or nil for real arrays.
func (a *Array) Complex() []complex128 { return a.cx }

// Clone returns a deep copy. Useful before calling a planning transform when
// the previous result must survive the next call.
func (a *Array) Clone() *Array {
	c := &Array{shape: append([]int(nil), a.shape...)}
	if a.re != nil {
		c.re = append([]float64(nil), a.re...)
	}
	if a.cx != nil {
		c.cx = append([]complex128(nil), a.cx...)
	}
	return c
}

func sizeOf(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

func checkShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("%w: empty shape", ErrShapeMismatch)
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, fmt.Errorf("%w: non-positive dimension in %v", ErrShapeMismatch, shape)
		}
		n *= d
	}
	return n, nil
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
