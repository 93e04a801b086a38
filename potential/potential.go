package potential

import (
	"fmt"
	"math"

	"github.com/RichardSibi/schrodinger/lattice"
)

// Func is a dimensionless potential U(y).
type Func func(y float64) float64

// Sample evaluates u at every point of l and returns the values
// index-aligned with the lattice (slice index k holds U(l.At(k))).
// Returns ErrNilLattice or ErrNilPotential on nil inputs, and
// ErrNonFiniteSample (wrapped with the offending coordinate) if any
// value is NaN or ±Inf.
// Complexity: O(N) time and memory.
func Sample(l *lattice.Lattice, u Func) ([]float64, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	if u == nil {
		return nil, ErrNilPotential
	}
	out := make([]float64, l.Len())
	for k := range out {
		y := l.At(k)
		v := u(y)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("at y=%g: %w", y, ErrNonFiniteSample)
		}
		out[k] = v
	}

	return out, nil
}
