package fft

import "errors"

// Sentinel errors returned by makers and transforms.
var (
	// ErrUnknownBackend is returned by NewMaker when the backend name is not
	// registered.
	ErrUnknownBackend = errors.New("fft: unknown backend")

	// ErrInvalidSpec is returned when a transform configuration is invalid:
	// empty shape, non-positive dimension, axis out of range, or a
	// shape/kind combination the backend cannot plan.
	ErrInvalidSpec = errors.New("fft: invalid transform configuration")

	// ErrShapeMismatch is returned when the array passed to a transform does
	// not match the configured input shape or element kind. Data is never
	// reshaped or cast implicitly.
	ErrShapeMismatch = errors.New("fft: data shape mismatch")

	// ErrNoSampleRate is returned by Frequencies when the transform was
	// built without a sample rate.
	ErrNoSampleRate = errors.New("fft: sample rate not configured")
)
