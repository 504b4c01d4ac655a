// SPDX-License-Identifier: MIT

package sobol_test

import (
	"testing"

	"github.com/katalvlaran/quasirand/sobol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewScaled_BoundsMismatch verifies construction fails when the
// bound vectors disagree in length.
func TestNewScaled_BoundsMismatch(t *testing.T) {
	sc, err := sobol.NewScaled([]float64{0, 0}, []float64{1})
	assert.ErrorIs(t, err, sobol.ErrDimensionMismatch)
	assert.Nil(t, sc)
}

// TestNewScaled_InvalidDimension verifies the inner dimension check
// still applies to bound-vector length.
func TestNewScaled_InvalidDimension(t *testing.T) {
	lb := make([]float64, sobol.MaxDimension+1)
	ub := make([]float64, sobol.MaxDimension+1)
	_, err := sobol.NewScaled(lb, ub)
	assert.ErrorIs(t, err, sobol.ErrInvalidDimension)
}

// TestScaled_AffineRoundTrip verifies out = lb + (ub−lb)·raw exactly,
// step for step against an unscaled twin. With lb=2, ub=4 every term is
// dyadic, so the comparison is exact.
func TestScaled_AffineRoundTrip(t *testing.T) {
	sc, err := sobol.NewScaled([]float64{2.0}, []float64{4.0})
	require.NoError(t, err)
	raw, err := sobol.New(1)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		got := sc.Next()[0]
		want := 2.0 + 2.0*raw.Next()[0]
		require.Equal(t, want, got, "point %d", i+1)
		require.GreaterOrEqual(t, got, 2.0)
		require.Less(t, got, 4.0)
	}
}

// TestScaled_MultiDimensionalBox spot-checks a mixed box, including a
// degenerate dimension (lb == ub pins the coordinate).
func TestScaled_MultiDimensionalBox(t *testing.T) {
	lb := []float64{-1.0, 0.0, 3.0}
	ub := []float64{1.0, 10.0, 3.0}
	sc, err := sobol.NewScaled(lb, ub)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		p := sc.Next()
		require.GreaterOrEqual(t, p[0], -1.0)
		require.Less(t, p[0], 1.0)
		require.GreaterOrEqual(t, p[1], 0.0)
		require.Less(t, p[1], 10.0)
		require.Equal(t, 3.0, p[2], "degenerate dimension must stay pinned")
	}
}

// TestScaled_SkipDelegates verifies Skip/SkipExact drive the inner
// sequence with the same policies as the plain generator.
func TestScaled_SkipDelegates(t *testing.T) {
	sc, err := sobol.NewScaled([]float64{0}, []float64{1})
	require.NoError(t, err)

	assert.EqualValues(t, 3, sc.Skip(5))
	assert.EqualValues(t, 5, sc.SkipExact(5))
	assert.Equal(t, uint32(8), sc.Inner_TestOnly().Counter_TestOnly())
}

// TestScaled_NextAtMismatch verifies the buffer-length check surfaces
// before any state moves.
func TestScaled_NextAtMismatch(t *testing.T) {
	sc, err := sobol.NewScaled([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	err = sc.NextAt(make([]float64, 3))
	assert.ErrorIs(t, err, sobol.ErrDimensionMismatch)
	assert.Zero(t, sc.Inner_TestOnly().Counter_TestOnly())
}

// TestScaled_BoundsAreCopied verifies the adapter is immune to caller
// mutation of the bound slices after construction.
func TestScaled_BoundsAreCopied(t *testing.T) {
	lb := []float64{0.0}
	ub := []float64{1.0}
	sc, err := sobol.NewScaled(lb, ub)
	require.NoError(t, err)

	lb[0] = -100
	ub[0] = +100
	got := sc.Next()[0]
	require.GreaterOrEqual(t, got, 0.0)
	require.Less(t, got, 1.0)
}

// TestSource_Capability verifies both variants satisfy the shared
// stream interface and agree on dimension reporting.
func TestSource_Capability(t *testing.T) {
	seq, err := sobol.New(2)
	require.NoError(t, err)
	sc, err := sobol.NewScaled([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	for _, src := range []sobol.Source{seq, sc} {
		require.Equal(t, 2, src.Dimension())
		require.Len(t, src.Next(), 2)
	}
}
