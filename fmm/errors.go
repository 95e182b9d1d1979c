package fmm

import "errors"

// Sentinel errors for inpainting. Callers match them with errors.Is;
// returned errors may wrap them with the offending coordinates or sizes.
var (
	// ErrNilInput indicates a nil image or mask.
	ErrNilInput = errors.New("fmm: image and mask must be non-nil")

	// ErrDimensionMismatch indicates the image and mask extents differ.
	ErrDimensionMismatch = errors.New("fmm: image and mask dimensions differ")

	// ErrBadRadius indicates a non-positive inpainting radius.
	ErrBadRadius = errors.New("fmm: radius must be positive")

	// ErrInvariant indicates an internal invariant was violated, e.g. a pixel
	// reached by the front with no resolved source to rebuild it from.
	ErrInvariant = errors.New("fmm: internal invariant violated")
)
