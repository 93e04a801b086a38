package lattice

import "math"

// Lattice is a uniform symmetric 1-D grid of 2N+1 points y_i = i·Δ for
// i in [-N, N]. It is immutable once built; all mutating access goes
// through copies.
type Lattice struct {
	halfCount int       // N
	step      float64   // Δ
	points    []float64 // slice index k holds y = (k-N)·Δ, length 2N+1
}

// New constructs a Lattice with half-count n (so 2n+1 points) and
// spacing step. The points are computed as (k-n)·step so that the
// midpoint is exactly zero and reconstruction from identical inputs is
// bit-identical.
// Returns ErrTooFewPoints if n < 1, ErrNonPositiveStep if step is not
// positive and finite.
// Complexity: O(n) time and memory.
func New(n int, step float64) (*Lattice, error) {
	if n < 1 {
		return nil, ErrTooFewPoints
	}
	if !(step > 0) || math.IsInf(step, 1) {
		return nil, ErrNonPositiveStep
	}
	pts := make([]float64, 2*n+1)
	for k := range pts {
		pts[k] = float64(k-n) * step
	}

	return &Lattice{halfCount: n, step: step, points: pts}, nil
}

// FromExtent constructs a Lattice covering approximately [-halfWidth, halfWidth]
// with spacing step, deriving the half-count as round(halfWidth/step).
// Returns ErrBadExtent if halfWidth is not positive and finite; step errors
// as in New.
// Complexity: O(halfWidth/step) time and memory.
func FromExtent(halfWidth, step float64) (*Lattice, error) {
	if !(halfWidth > 0) || math.IsInf(halfWidth, 1) {
		return nil, ErrBadExtent
	}
	if !(step > 0) || math.IsInf(step, 1) {
		return nil, ErrNonPositiveStep
	}

	return New(int(math.Round(halfWidth/step)), step)
}

// Len returns the total number of lattice points, 2N+1.
// Complexity: O(1).
func (l *Lattice) Len() int { return len(l.points) }

// HalfCount returns N, the number of points on either side of the origin.
// Complexity: O(1).
func (l *Lattice) HalfCount() int { return l.halfCount }

// Step returns the grid spacing Δ.
// Complexity: O(1).
func (l *Lattice) Step() float64 { return l.step }

// At returns the coordinate at slice index k, k in [0, 2N].
// At(0) = -N·Δ, At(2N) = N·Δ. Panics on out-of-range k, matching slice
// semantics.
// Complexity: O(1).
func (l *Lattice) At(k int) float64 { return l.points[k] }

// Coord returns the coordinate at centered index i, i in [-N, N]:
// Coord(0) is exactly 0.
// Complexity: O(1).
func (l *Lattice) Coord(i int) float64 { return l.points[i+l.halfCount] }

// Index maps a centered index i in [-N, N] to its slice index i+N.
// Complexity: O(1).
func (l *Lattice) Index(i int) int { return i + l.halfCount }

// Points returns a defensive copy of all coordinates in ascending order.
// Complexity: O(N) time and memory.
func (l *Lattice) Points() []float64 {
	out := make([]float64, len(l.points))
	copy(out, l.points)

	return out
}
