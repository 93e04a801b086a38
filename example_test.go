package schrodinger_test

import (
	"fmt"

	"github.com/RichardSibi/schrodinger"
	"github.com/RichardSibi/schrodinger/potential"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The dimensionless harmonic oscillator U(y) = y² on a 301-point grid
//	spanning [-6, 6]. The exact levels are ε_k = 2k+1; the finite
//	difference approximation reproduces the lowest of them to O(Δ²).
//
// Options:
//   - WithStates(4) — keep only the four lowest pairs in the Result.
//
// Complexity: O(n³) dense eigendecomposition, n = 301.
func ExampleSolve() {
	res, err := schrodinger.Solve(schrodinger.Problem{
		HalfCount: 150,
		Step:      0.04,
		Potential: potential.Harmonic(),
	}, schrodinger.WithStates(4))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for k, e := range res.Energies {
		fmt.Printf("ε_%d ≈ %.1f\n", k, e)
	}
	// Output:
	// ε_0 ≈ 1.0
	// ε_1 ≈ 3.0
	// ε_2 ≈ 5.0
	// ε_3 ≈ 7.0
}
