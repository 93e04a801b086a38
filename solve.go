package schrodinger

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/RichardSibi/schrodinger/hamiltonian"
	"github.com/RichardSibi/schrodinger/lattice"
	"github.com/RichardSibi/schrodinger/potential"
	"github.com/RichardSibi/schrodinger/spectrum"
)

// Problem describes one finite-difference eigenvalue problem: a grid of
// 2·HalfCount+1 points with spacing Step, and the potential U(y).
type Problem struct {
	HalfCount int            // N: points on each side of the origin
	Step      float64        // Δ: grid spacing
	Potential potential.Func // U(y)
}

// Result is the outcome of Solve: the lattice, the sampled potential, the
// retained eigenpairs, and the ground-state normalization diagnostic.
// State columns are rescaled by 1/√Δ so each satisfies the discrete inner
// product Δ·Σ|φ_i|² = 1 up to solver round-off.
type Result struct {
	Lattice   *lattice.Lattice
	Potential []float64  // U_i, index-aligned with the lattice
	Energies  []float64  // ascending, tie-stable
	States    *mat.Dense // column k pairs with Energies[k]
	Norm      float64    // Δ·Σ|φ_i|² of the ground state, as returned
}

// Ground returns the smallest eigenvalue and a copy of its wavefunction.
// The sign of the wavefunction is whatever the solver produced; see
// render.GroundState for the plotting convention.
// Complexity: O(n).
func (r *Result) Ground() (float64, []float64) {
	return r.Energies[0], r.State(0)
}

// State returns a copy of the k-th retained wavefunction. Panics on
// out-of-range k, matching slice semantics.
// Complexity: O(n).
func (r *Result) State(k int) []float64 {
	n, _ := r.States.Dims()
	out := make([]float64, n)
	mat.Col(out, k, r.States)

	return out
}

// Len returns the number of retained eigenpairs.
// Complexity: O(1).
func (r *Result) Len() int { return len(r.Energies) }

// NormDeviation reports |Norm - 1|, the distance of the ground state from
// exact discrete normalization.
// Complexity: O(1).
func (r *Result) NormDeviation() float64 { return math.Abs(r.Norm - 1) }

// Solve runs the whole pipeline: lattice → potential sampling →
// Hamiltonian assembly → dense symmetric eigendecomposition → 1/√Δ column
// rescale → ground-state normalization diagnostic.
//
// Each stage's sentinel errors pass through wrapped, so callers can
// errors.Is against lattice.ErrNonPositiveStep, potential.ErrNonFiniteSample,
// spectrum.ErrNormDeviation, and the rest.
// Complexity: O(n³) time, O(n²) memory for n = 2·HalfCount+1, dominated
// by the eigensolver.
func Solve(p Problem, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Stage 1: grid.
	lat, err := lattice.New(p.HalfCount, p.Step)
	if err != nil {
		return nil, fmt.Errorf("schrodinger: %w", err)
	}

	// Stage 2: potential vector.
	samples, err := potential.Sample(lat, p.Potential)
	if err != nil {
		return nil, fmt.Errorf("schrodinger: %w", err)
	}

	// Stage 3: Hamiltonian.
	h, err := hamiltonian.AssembleSampled(lat, samples)
	if err != nil {
		return nil, fmt.Errorf("schrodinger: %w", err)
	}

	// Stage 4: eigendecomposition, ascending and tie-stable.
	spec, err := spectrum.Decompose(h)
	if err != nil {
		return nil, fmt.Errorf("schrodinger: %w", err)
	}

	// Stage 5: retain the requested pairs and rescale columns by 1/√Δ so
	// the discrete inner product of each wavefunction is 1.
	n := spec.Len()
	keep := n
	if o.keepStates > 0 && o.keepStates < n {
		keep = o.keepStates
	}
	scale := 1 / math.Sqrt(lat.Step())
	energies := make([]float64, keep)
	states := mat.NewDense(n, keep, nil)
	col := make([]float64, n)
	for k := 0; k < keep; k++ {
		energies[k] = spec.Value(k)
		spec.VectorInto(k, col)
		for i := range col {
			col[i] *= scale
		}
		states.SetCol(k, col)
	}

	res := &Result{
		Lattice:   lat,
		Potential: samples,
		Energies:  energies,
		States:    states,
	}

	// Stage 6: diagnostic only — nothing is renormalized on failure.
	_, ground := res.Ground()
	res.Norm = spectrum.DiscreteNorm(ground, lat.Step())
	if !o.skipNormCheck {
		if err = spectrum.CheckNormalization(ground, lat.Step(), o.normTolerance); err != nil {
			return res, fmt.Errorf("schrodinger: ground state: %w", err)
		}
	}

	return res, nil
}
