// SPDX-License-Identifier: MIT
package circulant_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circsplit/circulant"
	"github.com/katalvlaran/circsplit/matrix"
)

// TestRemainder_DirectColumnExample walks the reference 3×3 case end to end.
func TestRemainder_DirectColumnExample(t *testing.T) {
	t.Parallel()

	a := seq3(t)
	c, err := circulant.DirectColumn(a)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 4, 7}, c)

	n, err := circulant.Remainder(a, c)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 5, 1}, {0, -4, 1}, {0, -4, -8}}, toRows(t, n))
}

// TestRemainder_ArbitraryGenerator uses a generator unrelated to A.
func TestRemainder_ArbitraryGenerator(t *testing.T) {
	t.Parallel()

	// C = [[1,3,2],[2,1,3],[3,2,1]]
	n, err := circulant.Remainder(seq3(t), []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1, -1}, {-2, -4, -3}, {-4, -6, -8}}, toRows(t, n))
}

// TestSplit_Identity verifies N + A == C for every strategy and fixture family,
// and that Split agrees with the step-by-step pipeline.
func TestSplit_Identity(t *testing.T) {
	t.Parallel()

	for _, a := range randomMatrices(t, 7) {
		for _, s := range circulant.Strategies() {
			sp, err := circulant.Split(a, s)
			require.NoError(t, err)
			require.Equal(t, s, sp.Strategy)

			sum, err := matrix.Add(sp.Remainder, a)
			require.NoError(t, err)
			ok, err := matrix.AllClose(sum, sp.Circulant, 0, 1e-12)
			require.NoError(t, err)
			require.True(t, ok, s.String())

			c, err := circulant.Approximate(a, s)
			require.NoError(t, err)
			require.Equal(t, c, sp.Generator)
			rem, err := circulant.Remainder(a, c)
			require.NoError(t, err)
			require.Equal(t, toRows(t, rem), toRows(t, sp.Remainder))
		}
	}
}

// TestRemainder_ExactSubtraction checks N[i,j] == c[(i−j) mod n] − A[i,j] bitwise.
func TestRemainder_ExactSubtraction(t *testing.T) {
	t.Parallel()

	a := randomMatrices(t, 6)[2]
	c, err := circulant.Max(a)
	require.NoError(t, err)
	n, err := circulant.Remainder(hide{a}, c, circulant.WithWorkers(3))
	require.NoError(t, err)

	av, nv := toRows(t, a), toRows(t, n)
	for i := range av {
		for j := range av[i] {
			require.Equal(t, c[circulant.OffsetOf(6, i, j)]-av[i][j], nv[i][j])
		}
	}
}

// TestRemainder_ShapeMismatch verifies ErrShape and no output.
func TestRemainder_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a := seq3(t)
	for _, c := range [][]float64{{}, {1}, {1, 2}, {1, 2, 3, 4}} {
		n, err := circulant.Remainder(a, c)
		require.ErrorIs(t, err, circulant.ErrShape)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		require.Nil(t, n)
	}

	// A nil generator is still a shape error, but names the nil cause.
	n, err := circulant.Remainder(a, nil)
	require.ErrorIs(t, err, circulant.ErrShape)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Nil(t, n)

	rect, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	n, err = circulant.Remainder(rect, []float64{1, 2, 3})
	require.ErrorIs(t, err, circulant.ErrShape)
	require.Nil(t, n)

	_, err = circulant.Remainder(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	require.NotPanics(t, func() { _, err = circulant.Remainder(typedNil, []float64{1}) })
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSplit_Errors verifies Split surfaces approximation errors unchanged.
func TestSplit_Errors(t *testing.T) {
	t.Parallel()

	sp, err := circulant.Split(seq3(t), circulant.StrategyOptimalNorm, circulant.WithOmega(0))
	require.ErrorIs(t, err, circulant.ErrInvalidOmega)
	require.Nil(t, sp)

	rect, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	sp, err = circulant.Split(rect, circulant.StrategyMin)
	require.ErrorIs(t, err, circulant.ErrShape)
	require.Nil(t, sp)
}
