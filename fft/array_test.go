package fft

import (
	"errors"
	"testing"
)

func TestNewArrayValidation(t *testing.T) {
	if _, err := NewReal([]int{4, 2}, make([]float64, 7)); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("length mismatch: got %v, want ErrShapeMismatch", err)
	}
	if _, err := NewComplex(nil, nil); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("empty shape: got %v, want ErrShapeMismatch", err)
	}
	if _, err := NewReal([]int{4, 0}, nil); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("zero dimension: got %v, want ErrShapeMismatch", err)
	}

	a, err := NewReal([]int{4, 2}, make([]float64, 8))
	if err != nil {
		t.Fatalf("NewReal: %v", err)
	}
	if a.Kind() != KindReal || a.Len() != 8 {
		t.Fatalf("kind=%v len=%d, want real/8", a.Kind(), a.Len())
	}
}

func TestArrayShapeIsCopied(t *testing.T) {
	shape := []int{2, 3}
	a, _ := NewReal(shape, make([]float64, 6))

	shape[0] = 99
	if got := a.Shape(); got[0] != 2 {
		t.Fatalf("array shape mutated through caller slice: %v", got)
	}

	got := a.Shape()
	got[1] = 99
	if a.Shape()[1] != 3 {
		t.Fatalf("array shape mutated through returned slice")
	}
}

func TestArrayClone(t *testing.T) {
	data := []complex128{1, 2i, -3}
	a, _ := NewComplex([]int{3}, data)

	c := a.Clone()
	data[0] = 42
	if c.Complex()[0] != 1 {
		t.Fatalf("clone shares backing with original")
	}
	if !shapeEqual(c.Shape(), a.Shape()) || c.Kind() != a.Kind() {
		t.Fatalf("clone metadata differs")
	}
}
