package potential

import "errors"

// Sentinel errors for potential sampling.
var (
	// ErrNilLattice indicates Sample was called with a nil lattice.
	ErrNilLattice = errors.New("potential: lattice must be non-nil")
	// ErrNilPotential indicates Sample was called with a nil potential function.
	ErrNilPotential = errors.New("potential: potential function must be non-nil")
	// ErrNonFiniteSample indicates U(y) evaluated to NaN or ±Inf at some lattice point.
	ErrNonFiniteSample = errors.New("potential: potential evaluated to a non-finite value")
)
