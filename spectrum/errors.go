package spectrum

import "errors"

// Sentinel errors for eigendecomposition and the normalization diagnostic.
var (
	// ErrNilMatrix indicates Decompose was called with a nil matrix.
	ErrNilMatrix = errors.New("spectrum: matrix must be non-nil")
	// ErrEigenFailed indicates the symmetric eigensolver did not converge.
	ErrEigenFailed = errors.New("spectrum: eigendecomposition did not converge")
	// ErrBadTolerance indicates a non-positive or non-finite tolerance.
	ErrBadTolerance = errors.New("spectrum: tolerance must be positive and finite")
	// ErrBadStep indicates a non-positive or non-finite grid spacing.
	ErrBadStep = errors.New("spectrum: step must be positive and finite")
	// ErrEmptyVector indicates a norm computation over an empty vector.
	ErrEmptyVector = errors.New("spectrum: vector must be non-empty")
	// ErrNormDeviation indicates the discrete norm deviates from 1 beyond tolerance.
	ErrNormDeviation = errors.New("spectrum: discrete norm deviates from 1")
)
