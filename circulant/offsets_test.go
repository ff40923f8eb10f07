// SPDX-License-Identifier: MIT
package circulant_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circsplit/circulant"
)

// TestOffsetOf covers the modular wrap for negative differences.
func TestOffsetOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, circulant.OffsetOf(1, 0, 0))
	require.Equal(t, 0, circulant.OffsetOf(3, 2, 2))
	require.Equal(t, 1, circulant.OffsetOf(3, 1, 0))
	require.Equal(t, 2, circulant.OffsetOf(3, 0, 1)) // (0-1) mod 3
	require.Equal(t, 1, circulant.OffsetOf(3, 0, 2)) // (0-2) mod 3
	require.Equal(t, 4, circulant.OffsetOf(5, 0, 1))
}

// TestOffsetClass_Small pins the exact pairs for n=3.
func TestOffsetClass_Small(t *testing.T) {
	t.Parallel()

	cls, err := circulant.OffsetClass(3, 1)
	require.NoError(t, err)
	require.Equal(t, []circulant.IndexPair{{Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 2, Col: 1}}, cls)

	cls, err = circulant.OffsetClass(3, 0)
	require.NoError(t, err)
	require.Equal(t, []circulant.IndexPair{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}, cls)
}

// TestPartition_CoversIndexSpace checks that for n = 1..16 the n classes hold
// exactly n pairs each, every pair satisfies its offset, and together they
// cover all n² pairs with no duplicates.
func TestPartition_CoversIndexSpace(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 16; n++ {
		classes, err := circulant.Partition(n)
		require.NoError(t, err)
		require.Len(t, classes, n)

		seen := make(map[circulant.IndexPair]int, n*n)
		for k, cls := range classes {
			require.Lenf(t, cls, n, "n=%d k=%d", n, k)
			rows := make(map[int]bool, n)
			for _, p := range cls {
				require.Equal(t, k, circulant.OffsetOf(n, p.Row, p.Col))
				rows[p.Row] = true
				seen[p]++
			}
			require.Lenf(t, rows, n, "every row appears once in class %d", k)
		}
		require.Len(t, seen, n*n)
		for p, hits := range seen {
			require.Equalf(t, 1, hits, "pair %v duplicated", p)
		}
	}
}

// TestOffsetClass_Errors covers invalid n and k.
func TestOffsetClass_Errors(t *testing.T) {
	t.Parallel()

	_, err := circulant.OffsetClass(0, 0)
	require.ErrorIs(t, err, circulant.ErrShape)
	_, err = circulant.OffsetClass(3, 3)
	require.ErrorIs(t, err, circulant.ErrOffsetRange)
	_, err = circulant.OffsetClass(3, -1)
	require.ErrorIs(t, err, circulant.ErrOffsetRange)
	_, err = circulant.Partition(0)
	require.ErrorIs(t, err, circulant.ErrShape)
}
