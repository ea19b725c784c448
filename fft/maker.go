package fft

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/unit"
)

// BackendConfig holds backend-level settings that apply to every transform a
// Maker constructs. Settings a backend cannot honor surface as
// ErrInvalidSpec when the transform is built, not when the Maker is created.
type BackendConfig struct {
	// DefaultNorm is the normalization applied when a transform request
	// carries no WithNorm or WithOrtho option. This is the hook through
	// which the unitary convention is selected backend-wide.
	DefaultNorm Norm
}

// BackendOption mutates a BackendConfig.
type BackendOption func(*BackendConfig)

// WithDefaultNorm sets the maker-wide default normalization.
func WithDefaultNorm(n Norm) BackendOption {
	return func(cfg *BackendConfig) { cfg.DefaultNorm = n }
}

// builder turns a validated spec into an executable transform.
type builder func(spec Spec, cfg BackendConfig) (Transform, error)

// The backend registry is populated here once and read-only thereafter.
// Adding a backend means adding a variant to this closed set, not teaching
// callers to type-switch on transform implementations.
var backendBuilders = map[string]builder{
	"reference": newReferenceTransform,
	"plan":      newPlanTransform,
	"gonum":     newGonumTransform,
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	names := make([]string, 0, len(backendBuilders))
	for name := range backendBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Maker constructs transforms for one backend. It holds no per-transform
// state and may be reused for arbitrarily many independent transforms.
type Maker struct {
	name  string
	build builder
	cfg   BackendConfig
}

// NewMaker resolves a backend name and binds backend-level options to it.
// Unknown names fail with ErrUnknownBackend before any transform work
// begins, so a missing backend is detected at setup time rather than deep in
// a reduction pipeline.
func NewMaker(name string, opts ...BackendOption) (*Maker, error) {
	build, ok := backendBuilders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownBackend, name, Backends())
	}
	m := &Maker{name: name, build: build}
	for _, opt := range opts {
		if opt != nil {
			opt(&m.cfg)
		}
	}
	return m, nil
}

// Backend returns the bound backend name.
func (m *Maker) Backend() string { return m.name }

// Option mutates a transform request before validation.
type Option func(*Spec)

// WithDirection sets the transform direction. The default is Forward.
func WithDirection(d Direction) Option {
	return func(s *Spec) { s.Direction = d }
}

// WithAxis selects the transformed axis. Negative values count from the
// end. The default is the last axis.
func WithAxis(axis int) Option {
	return func(s *Spec) { s.Axis = axis }
}

// WithOrtho selects orthogonal normalization (1/sqrt(n) both ways), making
// the forward/backward pair unitary.
func WithOrtho() Option {
	return func(s *Spec) { s.Norm = NormOrtho }
}

// WithNorm sets the normalization convention explicitly, overriding the
// maker default and WithOrtho.
func WithNorm(n Norm) Option {
	return func(s *Spec) { s.Norm = n }
}

// WithSampleRate attaches the physical sample rate of the time axis,
// enabling the frequency-axis property.
func WithSampleRate(rate unit.Frequency) Option {
	return func(s *Spec) { s.SampleRate = rate }
}

// New builds a transform for time-domain data of the given shape and element
// kind. The spec is validated before the backend is consulted; invalid
// configurations fail with ErrInvalidSpec.
func (m *Maker) New(shape []int, kind Kind, opts ...Option) (Transform, error) {
	spec := Spec{
		Shape: append([]int(nil), shape...),
		Kind:  kind,
		Axis:  -1,
		Norm:  m.cfg.DefaultNorm,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&spec)
		}
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return m.build(spec, m.cfg)
}
