// SPDX-License-Identifier: MIT
// Package circulant_test contains shared fixtures for the circulant tests.
package circulant_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circsplit/builder"
	"github.com/katalvlaran/circsplit/matrix"
)

// fixtureSeed locks every randomized test to the same draws.
const fixtureSeed = 20240601

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in matrix kernels.
type hide struct{ matrix.Matrix }

// mustRows builds a Dense from a literal or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// toRows reads m back into a [][]float64 literal for readable comparisons.
func toRows(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}
	return out
}

// seq3 is the 3×3 matrix [[1,2,3],[4,5,6],[7,8,9]].
func seq3(t *testing.T) *matrix.Dense {
	return mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
}

// randomMatrices returns a mix of every fixture family at dimension n.
func randomMatrices(t *testing.T, n int) []*matrix.Dense {
	t.Helper()
	var out []*matrix.Dense
	for _, fx := range builder.Fixtures() {
		ms, err := fx.Generate(2, n, builder.WithSeed(fixtureSeed))
		require.NoError(t, err)
		out = append(out, ms...)
	}
	return out
}
