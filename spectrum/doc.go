// Package spectrum diagonalizes the finite-difference Hamiltonian and
// exposes the sorted eigenpairs plus the discrete-normalization
// diagnostic.
//
// 🚀 What does it do?
//
//	Decompose runs a full dense symmetric eigendecomposition (gonum's
//	EigenSym, i.e. the LAPACK symmetric path) and returns a Spectrum:
//	all 2N+1 eigenvalues sorted ascending with a tie-stable permutation,
//	and the eigenvectors as columns aligned to that order. The smallest
//	pair is the ground state.
//
// Guarantees and non-guarantees:
//   - Eigenvalues are real (H is symmetric) and non-decreasing in order.
//   - Ties keep the solver's relative order (stable permutation);
//     eigenvector sign and in-eigenspace rotation remain ambiguous —
//     that is inherent to eigendecomposition, not a defect.
//   - Columns come back unit-normalized in the Euclidean sense; the
//     discrete inner product Δ·Σ|φ_i|² is checked, never enforced.
//     CheckNormalization is a diagnostic and never rescales its input.
//
// Errors:
//   - ErrNilMatrix   — Decompose received nil.
//   - ErrEigenFailed — the solver did not converge (pathological input;
//     not expected for a well-formed Hamiltonian at these sizes).
//
// Complexity: Decompose is O(n³) time, O(n²) memory for n = 2N+1.
package spectrum
