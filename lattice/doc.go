// Package lattice builds the uniform, symmetric 1-D grids on which the
// finite-difference Schrödinger solver operates.
//
// 🚀 What is a lattice here?
//
//	A lattice is the set of 2N+1 equally spaced sample points
//
//	    y_i = i·Δ,   i = -N … N,
//
//	spanning [-N·Δ, N·Δ] with the origin exactly in the middle. Every
//	downstream stage — potential sampling, Hamiltonian assembly, the
//	discrete normalization Δ·Σ|φ_i|² — is index-aligned with it.
//
// ✨ Key properties:
//   - Immutable once constructed; Points() hands out a defensive copy.
//   - Two constructors: New(n, step) when you know the half-count N,
//     FromExtent(halfWidth, step) when you know the physical half-width L.
//   - Centered indexing (Coord, Index) and slice indexing (At) coexist,
//     so callers never re-derive the i ↔ i+N mapping by hand.
//
// ⚙️ Usage:
//
//	import "github.com/RichardSibi/schrodinger/lattice"
//
//	lat, err := lattice.New(600, 0.01) // 1201 points on [-6, 6]
//	if err != nil { ... }
//	y := lat.At(0)        // -6.0
//	y0 := lat.Coord(0)    //  0.0 (centered index)
//
// Complexity: construction O(N) time and memory; all accessors O(1)
// except Points(), which copies in O(N).
package lattice
