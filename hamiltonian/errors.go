package hamiltonian

import "errors"

// Sentinel errors for Hamiltonian assembly.
var (
	// ErrNilLattice indicates a nil lattice was supplied.
	ErrNilLattice = errors.New("hamiltonian: lattice must be non-nil")
	// ErrPotentialLength indicates the sampled potential does not match the lattice size.
	ErrPotentialLength = errors.New("hamiltonian: potential vector length must equal lattice length")
)
