package render

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultPath is where GroundState writes when no path is given.
	DefaultPath = "ground_state.png"

	// DefaultWidth and DefaultHeight size the canvas.
	DefaultWidth  = 16 * vg.Centimeter
	DefaultHeight = 10 * vg.Centimeter

	// DefaultPotentialScale of 0 selects automatic scaling: the potential
	// is compressed into the wavefunction's vertical range.
	DefaultPotentialScale = 0
)

// Internal panic messages (no magic strings).
const (
	panicPathEmpty    = "render: WithPath: path must be non-empty"
	panicSizeInvalid  = "render: WithSize: width and height must be positive"
	panicScaleInvalid = "render: WithPotentialScale: factor must be positive and finite"
)

// Option mutates render options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	path           string
	width, height  vg.Length
	potentialScale float64 // 0 = auto
	title          string
}

// WithPath sets the output file; the extension selects the format.
// Panics on an empty path.
// Complexity: O(1).
func WithPath(path string) Option {
	if path == "" {
		panic(panicPathEmpty)
	}

	return func(o *options) { o.path = path }
}

// WithSize sets the canvas dimensions. Panics on non-positive lengths.
// Complexity: O(1).
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic(panicSizeInvalid)
	}

	return func(o *options) { o.width, o.height = width, height }
}

// WithPotentialScale fixes the factor multiplying U(y) before drawing,
// replacing the automatic fit. Panics unless the factor is positive and
// finite.
// Complexity: O(1).
func WithPotentialScale(f float64) Option {
	if !(f > 0) || math.IsInf(f, 1) {
		panic(panicScaleInvalid)
	}

	return func(o *options) { o.potentialScale = f }
}

// WithTitle sets the plot title.
// Complexity: O(1).
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// gatherOptions applies user setters on top of defaults, last-writer-wins.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) options {
	o := options{
		path:           DefaultPath,
		width:          DefaultWidth,
		height:         DefaultHeight,
		potentialScale: DefaultPotentialScale,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
