package potential

import "math"

// Harmonic returns the dimensionless harmonic oscillator U(y) = y².
// In these units the exact energy levels are ε_k = 2k+1.
func Harmonic() Func {
	return func(y float64) float64 { return y * y }
}

// HarmonicScaled returns U(y) = k·y². With k=1 it reduces to Harmonic.
func HarmonicScaled(k float64) Func {
	return func(y float64) float64 { return k * y * y }
}

// DoubleWell returns the bistable quartic U(y) = a·(y²-b)², with minima
// at y = ±√b and a barrier of height a·b² at the origin.
func DoubleWell(a, b float64) Func {
	return func(y float64) float64 {
		d := y*y - b

		return a * d * d
	}
}

// Morse returns the anharmonic Morse form U(y) = depth·(1-e^(-width·y))².
// Near the origin it behaves like depth·width²·y²; for y → +∞ it saturates
// at depth.
func Morse(depth, width float64) Func {
	return func(y float64) float64 {
		d := 1 - math.Exp(-width*y)

		return depth * d * d
	}
}

// FiniteWell returns the square well: -depth for |y| ≤ halfWidth, 0 outside.
func FiniteWell(depth, halfWidth float64) Func {
	return func(y float64) float64 {
		if math.Abs(y) <= halfWidth {
			return -depth
		}

		return 0
	}
}

// Linear returns the triangular well U(y) = slope·|y|.
func Linear(slope float64) Func {
	return func(y float64) float64 { return slope * math.Abs(y) }
}
