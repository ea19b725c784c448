package fft

import (
	"errors"
	"testing"
)

func TestBackendsRegistered(t *testing.T) {
	names := Backends()
	want := []string{"gonum", "plan", "reference"}
	if len(names) != len(want) {
		t.Fatalf("Backends() = %v, want %v", names, want)
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("Backends() = %v, want %v", names, want)
		}
	}
}

func TestNewMakerUnknownBackend(t *testing.T) {
	if _, err := NewMaker("nonexistent"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("got %v, want ErrUnknownBackend", err)
	}
}

func TestMakerValidatesBeforeBackend(t *testing.T) {
	for _, backend := range Backends() {
		maker := mustMaker(t, backend)

		if _, err := maker.New([]int{4, 8}, KindReal, WithAxis(5)); !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("%s: axis=5 on 2-D shape: got %v, want ErrInvalidSpec", backend, err)
		}
		if _, err := maker.New(nil, KindReal); !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("%s: empty shape: got %v, want ErrInvalidSpec", backend, err)
		}
	}
}

func TestMakerDefaultNorm(t *testing.T) {
	maker := mustMaker(t, "reference", WithDefaultNorm(NormUnitary))

	ft := mustTransform(t, maker, []int{8}, KindReal)
	if got := ft.Spec().Norm; got != NormUnitary {
		t.Fatalf("default norm %v, want unitary", got)
	}

	// Per-transform options override the maker default.
	ft = mustTransform(t, maker, []int{8}, KindReal, WithOrtho())
	if got := ft.Spec().Norm; got != NormOrtho {
		t.Fatalf("norm %v, want ortho", got)
	}
}

func TestMakerIsReusable(t *testing.T) {
	maker := mustMaker(t, "plan")

	a := mustTransform(t, maker, []int{8}, KindReal)
	b := mustTransform(t, maker, []int{16}, KindComplex, WithDirection(Backward))

	if a.Spec().AxisLen() != 8 || b.Spec().AxisLen() != 16 {
		t.Fatalf("transforms share state: %v / %v", a.Spec(), b.Spec())
	}
	if b.Spec().Direction != Backward {
		t.Fatalf("direction option ignored: %v", b.Spec())
	}
}
