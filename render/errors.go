package render

import "errors"

// Sentinel errors for result rendering.
var (
	// ErrNilResult indicates a nil solver result.
	ErrNilResult = errors.New("render: result must be non-nil")
	// ErrStateIndex indicates the requested state is not retained in the result.
	ErrStateIndex = errors.New("render: state index out of range")
)
