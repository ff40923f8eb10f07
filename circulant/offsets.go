// SPDX-License-Identifier: MIT

// Package circulant - cyclic diagonal indexing.
//
// The k-th cyclic diagonal of an n×n matrix is the offset class
//
//	{(i, j) : (i − j) mod n = k},  k ∈ [0, n).
//
// Every class holds exactly n pairs, one per row i, paired with
// column j = (i − k) mod n. The n classes partition the n² index space.
// Offset 0 is the main diagonal; offset k and (n − k) mod n are distinct
// classes for n > 2.
//
// Complexity quicksheet:
//   - OffsetOf: O(1); OffsetClass: O(n); Partition: O(n²).

package circulant

import (
	"fmt"

	"github.com/katalvlaran/circsplit/matrix"
)

// IndexPair is a (row, column) coordinate in an n×n matrix.
type IndexPair struct {
	Row int // zero-based row index
	Col int // zero-based column index
}

// OffsetOf returns the cyclic offset (i − j) mod n, always in [0, n).
// Assumes n ≥ 1; Go's % keeps the dividend sign, hence the correction.
func OffsetOf(n, i, j int) int {
	k := (i - j) % n
	if k < 0 {
		k += n
	}

	return k
}

// columnOnOffset returns the unique column j with (i − j) mod n == k.
func columnOnOffset(n, i, k int) int {
	return OffsetOf(n, i, k) // (i − k) mod n, same modular formula
}

// OffsetClass enumerates the index pairs lying on cyclic diagonal k,
// ordered by ascending row.
//
// Errors:
//   - ErrShape (with matrix.ErrInvalidDimensions) when n < 1.
//   - ErrOffsetRange when k ∉ [0, n).
//
// Complexity: O(n) time and memory.
func OffsetClass(n, k int) ([]IndexPair, error) {
	if n < 1 {
		return nil, shapeErrorf("OffsetClass", matrix.ErrInvalidDimensions)
	}
	if k < 0 || k >= n {
		return nil, fmt.Errorf("OffsetClass(n=%d, k=%d): %w", n, k, ErrOffsetRange)
	}

	out := make([]IndexPair, n)
	for i := 0; i < n; i++ { // exactly one pair per row
		out[i] = IndexPair{Row: i, Col: columnOnOffset(n, i, k)}
	}

	return out, nil
}

// Partition returns all n offset classes, indexed by k.
// The union of the classes is the full n×n index space with no overlaps.
//
// Errors: ErrShape when n < 1.
// Complexity: O(n²) time and memory.
func Partition(n int) ([][]IndexPair, error) {
	if n < 1 {
		return nil, shapeErrorf("Partition", matrix.ErrInvalidDimensions)
	}

	classes := make([][]IndexPair, n)
	for k := 0; k < n; k++ {
		cls, err := OffsetClass(n, k)
		if err != nil {
			return nil, circulantErrorf("Partition", err)
		}
		classes[k] = cls
	}

	return classes, nil
}
