package schrodinger

import "math"

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultNormTolerance is the absolute tolerance of the ground-state
	// discrete-normalization diagnostic.
	DefaultNormTolerance = 1e-8

	// DefaultKeepStates retains every eigenpair (0 means "all").
	DefaultKeepStates = 0
)

// Internal panic messages (no magic strings).
const (
	panicNormToleranceInvalid = "schrodinger: WithNormTolerance: tol must be positive and finite"
	panicKeepStatesInvalid    = "schrodinger: WithStates: k must be at least 1"
)

// Option mutates solver options. Constructors panic only on nonsensical
// values (programmer error); everything data-dependent surfaces as an
// error from Solve.
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. It is unexported; Solve accepts ...Option and resolves them
// via gatherOptions.
type options struct {
	normTolerance float64 // > 0; DefaultNormTolerance
	keepStates    int     // 0 = all; otherwise number of lowest pairs kept
	skipNormCheck bool    // diagnostic off
}

// WithNormTolerance sets the absolute tolerance for the ground-state
// normalization diagnostic. Panics if tol is not positive and finite.
// Complexity: O(1).
func WithNormTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 1) || math.IsNaN(tol) {
		panic(panicNormToleranceInvalid)
	}

	return func(o *options) { o.normTolerance = tol }
}

// WithStates retains only the k lowest eigenpairs in the Result. The full
// decomposition still runs (dense solver, spec'd non-goal: no partial
// iterative solve); this only trims what the Result materializes.
// Panics if k < 1.
// Complexity: O(1).
func WithStates(k int) Option {
	if k < 1 {
		panic(panicKeepStatesInvalid)
	}

	return func(o *options) { o.keepStates = k }
}

// WithoutNormCheck disables the normalization diagnostic. Result.Norm is
// still recorded; it just never fails the solve.
// Complexity: O(1).
func WithoutNormCheck() Option {
	return func(o *options) { o.skipNormCheck = true }
}

// gatherOptions applies user setters on top of defaults,
// last-writer-wins.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) options {
	o := options{
		normTolerance: DefaultNormTolerance,
		keepStates:    DefaultKeepStates,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
