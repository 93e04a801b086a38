package spectrum

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Spectrum holds the full eigendecomposition of a symmetric matrix:
// eigenvalues sorted ascending (tie-stable) and eigenvectors as columns
// aligned to that order. It is immutable once built.
type Spectrum struct {
	values  []float64
	vectors *mat.Dense // column k pairs with values[k]
}

// Decompose computes all eigenvalues and eigenvectors of h.
// The solver output is reordered through a stable sort on the eigenvalues,
// so degenerate eigenvalues keep their relative solver order.
// Returns ErrNilMatrix on nil input and ErrEigenFailed if the
// decomposition does not converge.
// Complexity: O(n³) time, O(n²) memory.
func Decompose(h *mat.SymDense) (*Spectrum, error) {
	if h == nil {
		return nil, ErrNilMatrix
	}

	// Stage 1: dense symmetric eigendecomposition (LAPACK path).
	var es mat.EigenSym
	if ok := es.Factorize(h, true); !ok {
		return nil, ErrEigenFailed
	}
	raw := es.Values(nil)
	var rawVecs mat.Dense
	es.VectorsTo(&rawVecs)

	// Stage 2: tie-stable ascending permutation.
	n := len(raw)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return raw[perm[a]] < raw[perm[b]] })

	// Stage 3: materialize sorted values and aligned columns.
	values := make([]float64, n)
	vectors := mat.NewDense(n, n, nil)
	col := make([]float64, n)
	for k, idx := range perm {
		values[k] = raw[idx]
		mat.Col(col, idx, &rawVecs)
		vectors.SetCol(k, col)
	}

	return &Spectrum{values: values, vectors: vectors}, nil
}

// Len returns the number of eigenpairs.
// Complexity: O(1).
func (s *Spectrum) Len() int { return len(s.values) }

// Value returns the k-th smallest eigenvalue. Panics on out-of-range k,
// matching slice semantics.
// Complexity: O(1).
func (s *Spectrum) Value(k int) float64 { return s.values[k] }

// Values returns a copy of all eigenvalues in ascending order.
// Complexity: O(n).
func (s *Spectrum) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)

	return out
}

// Vector returns a copy of the eigenvector paired with Value(k).
// Complexity: O(n).
func (s *Spectrum) Vector(k int) []float64 {
	out := make([]float64, len(s.values))
	mat.Col(out, k, s.vectors)

	return out
}

// VectorInto writes the k-th eigenvector into dst and returns dst.
// dst must have length Len().
// Complexity: O(n).
func (s *Spectrum) VectorInto(k int, dst []float64) []float64 {
	return mat.Col(dst, k, s.vectors)
}

// Ground returns the smallest eigenvalue and a copy of its eigenvector.
// Complexity: O(n).
func (s *Spectrum) Ground() (float64, []float64) {
	return s.values[0], s.Vector(0)
}
