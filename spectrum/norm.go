package spectrum

import (
	"fmt"
	"math"
)

// DiscreteNorm computes Δ·Σ|φ_i|², the discrete approximation of
// ∫|φ|²dy on a lattice of spacing step.
// Complexity: O(n).
func DiscreteNorm(phi []float64, step float64) float64 {
	sum := 0.0
	for _, v := range phi {
		sum += v * v
	}

	return step * sum
}

// CheckNormalization verifies |Δ·Σ|φ_i|² - 1| ≤ tol. It is a diagnostic:
// phi is never rescaled, whatever the outcome.
// Returns ErrEmptyVector for empty input, ErrBadStep for a non-positive
// or non-finite step, ErrBadTolerance for a non-positive or non-finite
// tol, and ErrNormDeviation (wrapped with the measured norm) when the
// check fails. A NaN or ±Inf norm always fails: NaN compares false
// against any tolerance, so it is rejected explicitly rather than slipping
// through as "normalized".
// Complexity: O(n).
func CheckNormalization(phi []float64, step, tol float64) error {
	if len(phi) == 0 {
		return ErrEmptyVector
	}
	if !(step > 0) || math.IsInf(step, 1) {
		return ErrBadStep
	}
	if !(tol > 0) || math.IsInf(tol, 1) {
		return ErrBadTolerance
	}
	norm := DiscreteNorm(phi, step)
	if math.IsNaN(norm) || math.IsInf(norm, 0) || math.Abs(norm-1) > tol {
		return fmt.Errorf("got %v: %w", norm, ErrNormDeviation)
	}

	return nil
}
