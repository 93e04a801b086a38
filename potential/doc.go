// Package potential defines the dimensionless potential functions U(y)
// fed into the finite-difference Hamiltonian, and the sampling step that
// turns a function into a lattice-aligned vector.
//
// 🚀 What lives here?
//
//	A Func is any scalar map U: ℝ → ℝ. The catalog covers the standard
//	teaching potentials in dimensionless form:
//	  • Harmonic()             — U(y) = y², the textbook oscillator
//	  • HarmonicScaled(k)      — U(y) = k·y²
//	  • DoubleWell(a, b)       — U(y) = a·(y²-b)², bistable well
//	  • Morse(depth, width)    — U(y) = depth·(1-e^(-width·y))²
//	  • FiniteWell(depth, hw)  — square well of the given depth
//	  • Linear(slope)          — U(y) = slope·|y|, triangular well
//
// Sampling policy:
//
//	Sample evaluates U at every lattice point and rejects NaN/±Inf values
//	up front (ErrNonFiniteSample) — a non-finite entry would otherwise
//	poison the eigensolver far from its source.
//
// ⚙️ Usage:
//
//	lat, _ := lattice.New(600, 0.01)
//	u, err := potential.Sample(lat, potential.Harmonic())
//
// Complexity: Sample is O(N) time and memory; catalog constructors O(1).
package potential
