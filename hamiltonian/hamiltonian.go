package hamiltonian

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/RichardSibi/schrodinger/lattice"
	"github.com/RichardSibi/schrodinger/potential"
)

// Assemble samples u on l and builds the (2N+1)×(2N+1) finite-difference
// Hamiltonian. Sampling errors from the potential package pass through
// wrapped.
// Complexity: O(N²) memory, O(N) nonzero writes.
func Assemble(l *lattice.Lattice, u potential.Func) (*mat.SymDense, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	samples, err := potential.Sample(l, u)
	if err != nil {
		return nil, fmt.Errorf("hamiltonian: %w", err)
	}

	return AssembleSampled(l, samples)
}

// AssembleSampled builds the Hamiltonian from an already sampled potential
// vector (index-aligned with the lattice):
//
//	H[i][i]   = 2/Δ² + samples[i]
//	H[i][i±1] = -1/Δ²
//
// Returns ErrNilLattice or ErrPotentialLength on malformed input. Identical
// inputs yield bit-identical matrices: entries are computed once from Δ and
// written in a fixed order.
// Complexity: O(N²) memory, O(N) nonzero writes.
func AssembleSampled(l *lattice.Lattice, samples []float64) (*mat.SymDense, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	n := l.Len()
	if len(samples) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPotentialLength, len(samples), n)
	}

	invStep2 := 1 / (l.Step() * l.Step()) // 1/Δ²
	diag := 2 * invStep2                  // kinetic diagonal 2/Δ²

	h := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		h.SetSym(i, i, diag+samples[i])
		if i+1 < n {
			h.SetSym(i, i+1, -invStep2)
		}
	}

	return h, nil
}
