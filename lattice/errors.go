package lattice

import "errors"

// Sentinel errors for lattice construction.
var (
	// ErrNonPositiveStep indicates the grid spacing Δ is zero, negative, or non-finite.
	ErrNonPositiveStep = errors.New("lattice: step must be positive and finite")
	// ErrTooFewPoints indicates the half-count N is below 1, leaving a degenerate operator.
	ErrTooFewPoints = errors.New("lattice: half-count must be at least 1")
	// ErrBadExtent indicates the requested half-width is zero, negative, or non-finite.
	ErrBadExtent = errors.New("lattice: half-width must be positive and finite")
)
