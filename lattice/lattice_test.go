package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RichardSibi/schrodinger/lattice"
)

// TestNew_Errors verifies that New rejects degenerate half-counts and steps.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		n    int
		step float64
		err  error
	}{
		{"ZeroHalfCount", 0, 0.1, lattice.ErrTooFewPoints},
		{"NegativeHalfCount", -3, 0.1, lattice.ErrTooFewPoints},
		{"ZeroStep", 10, 0, lattice.ErrNonPositiveStep},
		{"NegativeStep", 10, -0.5, lattice.ErrNonPositiveStep},
		{"NaNStep", 10, math.NaN(), lattice.ErrNonPositiveStep},
		{"InfStep", 10, math.Inf(1), lattice.ErrNonPositiveStep},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lattice.New(tc.n, tc.step)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFromExtent_Errors verifies half-width validation.
func TestFromExtent_Errors(t *testing.T) {
	_, err := lattice.FromExtent(0, 0.1)
	assert.ErrorIs(t, err, lattice.ErrBadExtent, "zero half-width must error")

	_, err = lattice.FromExtent(-1, 0.1)
	assert.ErrorIs(t, err, lattice.ErrBadExtent, "negative half-width must error")

	_, err = lattice.FromExtent(math.NaN(), 0.1)
	assert.ErrorIs(t, err, lattice.ErrBadExtent, "NaN half-width must error")

	_, err = lattice.FromExtent(6, 0)
	assert.ErrorIs(t, err, lattice.ErrNonPositiveStep, "zero step must error")
}

// TestNew_Endpoints checks the span contract: At(0) = -N·Δ, At(2N) = N·Δ,
// exact zero at the midpoint.
func TestNew_Endpoints(t *testing.T) {
	lat, err := lattice.New(600, 0.01)
	require.NoError(t, err)

	assert.Equal(t, 1201, lat.Len())
	assert.Equal(t, 600, lat.HalfCount())
	assert.Equal(t, 0.01, lat.Step())
	assert.InDelta(t, -6.0, lat.At(0), 1e-12)
	assert.InDelta(t, 6.0, lat.At(lat.Len()-1), 1e-12)
	assert.Equal(t, 0.0, lat.Coord(0), "midpoint must be exactly zero")
}

// TestCenteredIndexing verifies Coord/Index/At agree for every point.
func TestCenteredIndexing(t *testing.T) {
	lat, err := lattice.New(5, 0.25)
	require.NoError(t, err)

	for i := -5; i <= 5; i++ {
		k := lat.Index(i)
		assert.Equal(t, lat.Coord(i), lat.At(k), "Coord(%d) vs At(%d)", i, k)
		assert.Equal(t, float64(i)*0.25, lat.Coord(i))
	}
}

// TestFromExtent_RoundsHalfCount checks that the half-count is derived by
// rounding halfWidth/step.
func TestFromExtent_RoundsHalfCount(t *testing.T) {
	lat, err := lattice.FromExtent(6, 0.01)
	require.NoError(t, err)
	assert.Equal(t, 600, lat.HalfCount())

	lat, err = lattice.FromExtent(1, 0.3) // 1/0.3 = 3.33… → 3
	require.NoError(t, err)
	assert.Equal(t, 3, lat.HalfCount())
}

// TestPoints_DefensiveCopy ensures mutating the returned slice does not
// affect the lattice.
func TestPoints_DefensiveCopy(t *testing.T) {
	lat, err := lattice.New(2, 1.0)
	require.NoError(t, err)

	pts := lat.Points()
	pts[0] = 42

	assert.Equal(t, -2.0, lat.At(0), "lattice must be immutable")
	assert.Equal(t, []float64{-2, -1, 0, 1, 2}, lat.Points())
}

// TestNew_BitIdenticalReconstruction verifies that two lattices built from
// identical inputs hold bit-identical coordinates.
func TestNew_BitIdenticalReconstruction(t *testing.T) {
	a, err := lattice.New(600, 0.01)
	require.NoError(t, err)
	b, err := lattice.New(600, 0.01)
	require.NoError(t, err)

	pa, pb := a.Points(), b.Points()
	for k := range pa {
		if math.Float64bits(pa[k]) != math.Float64bits(pb[k]) {
			t.Fatalf("point %d differs bitwise: %v vs %v", k, pa[k], pb[k])
		}
	}
}
