// Package schrodinger solves the dimensionless one-dimensional
// time-independent Schrödinger equation by finite differences — build a
// lattice, sample a potential, assemble the tridiagonal Hamiltonian,
// diagonalize, verify, plot.
//
// 🚀 What is schrodinger?
//
//	A small teaching-grade numerical library that turns
//
//	    -φ'' + U(y)·φ = ε·φ
//
//	into a dense symmetric eigenvalue problem and hands the work to a
//	standard eigensolver:
//		• Lattice:     uniform centered grids y_i = i·Δ, i ∈ [-N, N]
//		• Potentials:  harmonic, double well, Morse, finite well, linear
//		• Hamiltonian: H[i][i] = 2/Δ² + U_i, H[i][i±1] = -1/Δ²
//		• Spectrum:    all eigenpairs, ascending, tie-stable
//		• Diagnostic:  discrete normalization Δ·Σ|φ_i|² ≈ 1
//		• Rendering:   ground state vs. scaled potential, PNG/SVG
//
// ✨ Why use it?
//
//   - One-call pipeline — Solve(Problem{...}) does grid → matrix →
//     eigenpairs → verification in order, nothing hidden
//   - Honest numerics — sentinel errors at the boundary, no silent
//     renormalization, eigenvector sign ambiguity documented not patched
//   - Standard stack — gonum for the dense symmetric solve and plotting
//
// Under the hood, everything is organized into subpackages:
//
//	lattice/     — uniform symmetric 1-D grids
//	potential/   — U(y) catalog + lattice sampling
//	hamiltonian/ — dense symmetric finite-difference assembly
//	spectrum/    — eigendecomposition, sorting, normalization check
//	render/      — ground-state plots via gonum/plot
//
// Quick sketch, the harmonic oscillator at Δ=0.01 on [-6, 6]:
//
//	res, err := schrodinger.Solve(schrodinger.Problem{
//		HalfCount: 600,
//		Step:      0.01,
//		Potential: potential.Harmonic(),
//	})
//	e0, _ := res.Ground() // ≈ 0.9999937, exact value is 1
//
// See examples/ for full scenarios.
package schrodinger
