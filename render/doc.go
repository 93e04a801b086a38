// Package render draws solver results: a wavefunction against the scaled
// potential on shared axes, written to PNG/SVG/PDF via gonum/plot.
//
// Plotting conventions:
//
//   - The plotted wavefunction is sign-normalized so its extremum of
//     largest magnitude points up. Eigensolvers fix eigenvectors only up
//     to sign, so without this the curve would flip between runs; the
//     Result itself is left untouched.
//   - The potential is drawn rescaled into the wavefunction's vertical
//     range (auto by default, fixed via WithPotentialScale), since U and
//     φ live on entirely different scales.
//   - x-coordinates come straight from the lattice, so the two curves are
//     aligned point-for-point.
//
// The output format follows the file extension of the target path
// (gonum/plot supports .png, .svg, .pdf, .eps, .tif, .jpg among others).
//
// ⚙️ Usage:
//
//	res, _ := schrodinger.Solve(schrodinger.Problem{...})
//	err := render.GroundState(res, render.WithPath("ground_state.png"))
//
// Complexity: O(N) point preparation plus the backend's rasterization.
package render
