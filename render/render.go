package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/RichardSibi/schrodinger"
)

// GroundState plots the lowest retained wavefunction against the scaled
// potential and writes it to the configured path.
// Returns ErrNilResult on nil input; save/encoding failures pass through.
// Complexity: O(N) preparation plus backend work.
func GroundState(res *schrodinger.Result, opts ...Option) error {
	return State(res, 0, opts...)
}

// State plots the k-th retained wavefunction against the scaled potential.
// Returns ErrNilResult or ErrStateIndex (wrapped with the offending index)
// on malformed input.
// Complexity: O(N) preparation plus backend work.
func State(res *schrodinger.Result, k int, opts ...Option) error {
	if res == nil {
		return ErrNilResult
	}
	if k < 0 || k >= res.Len() {
		return fmt.Errorf("%w: %d with %d states retained", ErrStateIndex, k, res.Len())
	}
	o := gatherOptions(opts...)

	// Stage 1: sign-normalize a copy of the wavefunction (peak up).
	phi := res.State(k)
	signNormalize(phi)

	// Stage 2: fit the potential into the wavefunction's vertical range.
	scale := o.potentialScale
	if scale == DefaultPotentialScale {
		maxPhi, maxU := maxAbs(phi), maxAbs(res.Potential)
		if maxPhi > 0 && maxU > 0 {
			scale = maxPhi / maxU
		} else {
			scale = 1
		}
	}

	// Stage 3: assemble the two curves, point-aligned on the lattice.
	ys := res.Lattice.Points()
	phiXY := make(plotter.XYs, len(ys))
	uXY := make(plotter.XYs, len(ys))
	for i, y := range ys {
		phiXY[i] = plotter.XY{X: y, Y: phi[i]}
		uXY[i] = plotter.XY{X: y, Y: scale * res.Potential[i]}
	}

	// Stage 4: draw and save.
	p := plot.New()
	if o.title != "" {
		p.Title.Text = o.title
	} else {
		p.Title.Text = fmt.Sprintf("state %d, ε = %.6f", k, res.Energies[k])
	}
	p.X.Label.Text = "y"
	p.Y.Label.Text = "φ(y)"

	phiLine, err := plotter.NewLine(phiXY)
	if err != nil {
		return fmt.Errorf("render: wavefunction line: %w", err)
	}
	phiLine.LineStyle.Width = vg.Points(1.5)
	phiLine.LineStyle.Color = color.RGBA{B: 255, A: 255}

	uLine, err := plotter.NewLine(uXY)
	if err != nil {
		return fmt.Errorf("render: potential line: %w", err)
	}
	uLine.LineStyle.Width = vg.Points(1)
	uLine.LineStyle.Color = color.RGBA{R: 200, A: 255}
	uLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	p.Add(phiLine, uLine)
	p.Legend.Add(fmt.Sprintf("φ_%d", k), phiLine)
	p.Legend.Add("U (scaled)", uLine)
	p.Legend.Top = true

	if err = p.Save(o.width, o.height, o.path); err != nil {
		return fmt.Errorf("render: save %s: %w", o.path, err)
	}

	return nil
}

// signNormalize flips phi in place when its extremum of largest magnitude
// is negative, so the plotted curve peaks upward regardless of the
// eigensolver's sign choice.
func signNormalize(phi []float64) {
	extremum := 0.0
	for _, v := range phi {
		if math.Abs(v) > math.Abs(extremum) {
			extremum = v
		}
	}
	if extremum < 0 {
		for i := range phi {
			phi[i] = -phi[i]
		}
	}
}

// maxAbs returns max_i |v_i|, 0 for an empty slice.
func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}

	return m
}
