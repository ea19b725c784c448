// Package fft provides a common interface over multiple FFT backends for
// baseband data reduction.
//
// The package separates transform configuration from execution. A [Maker] is
// bound to one backend and constructs [Transform] values for a fixed shape,
// element kind, axis and normalization. A Transform is immutable and can be
// applied to any number of input arrays of the configured shape.
//
// Three backends are registered:
//
//   - "reference": stateless per-call transforms via mjibson/go-dsp. Every
//     call allocates a fresh result and is safe for concurrent use.
//   - "plan": planned transforms via MeKo-Christian/algo-fft. The plan and its
//     input/output buffers are allocated once at construction and reused on
//     every call, so repeated transforms of the same shape avoid per-call
//     setup and allocation. Calls on one Transform must be serialized.
//   - "gonum": precomputed-twiddle transforms via gonum/dsp/fourier.
//
// # Buffer reuse
//
// The "plan" backend returns the same output array on every call; its
// contents are overwritten by the next call on the Transform or on its
// paired inverse. Callers that need a result beyond the next call must copy
// it first. This reuse is the backend's performance contract, not an
// implementation accident.
//
// # Usage
//
// Transform a block of real samples and read the frequency axis:
//
//	maker, _ := fft.NewMaker("plan")
//	ft, _ := maker.New([]int{1024}, fft.KindReal,
//	    fft.WithSampleRate(1000*unit.Hertz))
//	spec, _ := ft.Transform(x)       // x: *fft.Array, shape [1024], real
//	freqs, _ := ft.Frequencies()     // 513 bins, unit.Frequency
//	back, _ := ft.Inverse().Transform(spec)
package fft
