package fft

import (
	"fmt"

	"gonum.org/v1/gonum/unit"
)

// Direction selects between the forward (time to frequency) and backward
// (frequency to time) transform.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Norm selects the normalization convention, stated relative to the raw
// (unnormalized) DFT:
//
//	NormNone     forward unscaled, backward scaled by 1/n
//	NormUnitary  forward scaled by 1/n, backward unscaled
//	NormOrtho    both directions scaled by 1/sqrt(n)
//
// where n is the full time-domain length of the transformed axis, also for
// real transforms whose frequency axis is shortened to n/2+1. Power-spectral
// work and amplitude-preserving work expect different conventions; a wrong
// scale silently corrupts downstream physical quantities, so the convention
// is part of a transform's identity rather than a post-processing choice.
type Norm int

const (
	NormNone Norm = iota
	NormUnitary
	NormOrtho
)

// String returns the normalization name.
func (n Norm) String() string {
	switch n {
	case NormNone:
		return "none"
	case NormUnitary:
		return "unitary"
	case NormOrtho:
		return "ortho"
	default:
		return fmt.Sprintf("Norm(%d)", int(n))
	}
}

// Spec is the immutable configuration of one transform direction.
//
// Shape and Kind always describe the TIME domain, regardless of Direction;
// the frequency-domain shape and kind are derived. A Backward spec therefore
// consumes arrays of FreqShape/KindComplex and produces Shape/Kind — exactly
// the mirror of the Forward spec with the same fields.
type Spec struct {
	// Shape holds the time-domain dimensions. All must be positive.
	Shape []int
	// Kind is the time-domain element kind. The frequency domain is always
	// complex; real Kind selects the real-to-complex convention in which the
	// transformed axis shortens to n/2+1 bins.
	Kind Kind
	// Direction of this transform.
	Direction Direction
	// Axis is the index of the transformed axis. Negative values count from
	// the end, so -1 is the last axis.
	Axis int
	// Norm is the normalization convention.
	Norm Norm
	// SampleRate of the time axis. Zero means unknown; the frequency axis is
	// then unavailable.
	SampleRate unit.Frequency
}

// validate checks the spec and resolves a negative Axis in place.
func (s *Spec) validate() error {
	if len(s.Shape) == 0 {
		return fmt.Errorf("%w: empty shape", ErrInvalidSpec)
	}
	for _, d := range s.Shape {
		if d <= 0 {
			return fmt.Errorf("%w: non-positive dimension in shape %v", ErrInvalidSpec, s.Shape)
		}
	}
	ax := s.Axis
	if ax < 0 {
		ax += len(s.Shape)
	}
	if ax < 0 || ax >= len(s.Shape) {
		return fmt.Errorf("%w: axis %d out of range for shape %v", ErrInvalidSpec, s.Axis, s.Shape)
	}
	s.Axis = ax
	if s.Kind != KindReal && s.Kind != KindComplex {
		return fmt.Errorf("%w: unsupported element kind %d", ErrInvalidSpec, int(s.Kind))
	}
	if s.Direction != Forward && s.Direction != Backward {
		return fmt.Errorf("%w: unsupported direction %d", ErrInvalidSpec, int(s.Direction))
	}
	switch s.Norm {
	case NormNone, NormUnitary, NormOrtho:
	default:
		return fmt.Errorf("%w: unsupported normalization %d", ErrInvalidSpec, int(s.Norm))
	}
	if s.SampleRate < 0 {
		return fmt.Errorf("%w: negative sample rate %v", ErrInvalidSpec, s.SampleRate)
	}
	return nil
}

// AxisLen returns the full time-domain length n of the transformed axis.
func (s Spec) AxisLen() int { return s.Shape[s.Axis] }

// FreqLen returns the frequency-domain length of the transformed axis:
// n/2+1 for real time-domain data, n otherwise.
func (s Spec) FreqLen() int {
	n := s.AxisLen()
	if s.Kind == KindReal {
		return n/2 + 1
	}
	return n
}

// FreqShape returns the frequency-domain dimensions.
func (s Spec) FreqShape() []int {
	shape := append([]int(nil), s.Shape...)
	shape[s.Axis] = s.FreqLen()
	return shape
}

// FreqKind returns the frequency-domain element kind, which is always
// complex. Hermitian (conjugate-symmetric) frequency input is unsupported.
func (s Spec) FreqKind() Kind { return KindComplex }

// InShape returns the shape this transform consumes.
func (s Spec) InShape() []int {
	if s.Direction == Forward {
		return append([]int(nil), s.Shape...)
	}
	return s.FreqShape()
}

// InKind returns the element kind this transform consumes.
func (s Spec) InKind() Kind {
	if s.Direction == Forward {
		return s.Kind
	}
	return s.FreqKind()
}

// OutShape returns the shape this transform produces.
func (s Spec) OutShape() []int {
	if s.Direction == Forward {
		return s.FreqShape()
	}
	return append([]int(nil), s.Shape...)
}

// OutKind returns the element kind this transform produces.
func (s Spec) OutKind() Kind {
	if s.Direction == Forward {
		return s.FreqKind()
	}
	return s.Kind
}

// inverse returns the structurally mirrored spec.
func (s Spec) inverse() Spec {
	inv := s
	inv.Shape = append([]int(nil), s.Shape...)
	if s.Direction == Forward {
		inv.Direction = Backward
	} else {
		inv.Direction = Forward
	}
	return inv
}

func (s Spec) String() string {
	rate := "unset"
	if s.SampleRate != 0 {
		rate = fmt.Sprintf("%v Hz", float64(s.SampleRate))
	}
	return fmt.Sprintf("direction=%v, axis=%d, norm=%v, sample_rate=%s, time=%v %v, freq=%v %v",
		s.Direction, s.Axis, s.Norm, rate, s.Shape, s.Kind, s.FreqShape(), s.FreqKind())
}
