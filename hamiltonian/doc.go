// Package hamiltonian assembles the dense symmetric finite-difference
// Hamiltonian of the dimensionless 1-D Schrödinger equation
//
//	-φ'' + U·φ = ε·φ.
//
// The three-point stencil for -φ'' on a lattice of spacing Δ gives
//
//	H[i][i]   = 2/Δ² + U(y_i)
//	H[i][i±1] = -1/Δ²
//
// with every other entry exactly zero, so H is symmetric and
// tridiagonal. Truncating the stencil at the grid ends encodes hard-wall
// boundaries: the wavefunction is implicitly zero outside [-N·Δ, N·Δ].
//
// The matrix is built once, handed to spectrum.Decompose, and discarded;
// it is represented as a gonum *mat.SymDense so the eigensolver can take
// the symmetric LAPACK path.
//
// Complexity: assembly is O(N²) memory for the dense symmetric storage
// and O(N) time spent on nonzero entries.
package hamiltonian
