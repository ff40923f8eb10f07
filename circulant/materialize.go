// SPDX-License-Identifier: MIT

package circulant

import "github.com/katalvlaran/circsplit/matrix"

const opMaterialize = "Materialize"

// Materialize expands generator c into the dense circulant matrix
//
//	C[i,j] = c[(i−j) mod n],  n = len(c).
//
// Column 0 of C equals c, and every row is a cyclic rotation of row 0.
// The result never aliases c. WithWorkers partitions the rows.
//
// Errors: ErrShape when c is empty.
// Complexity: O(n²) time and memory.
func Materialize(c []float64, opts ...Option) (*matrix.Dense, error) {
	n := len(c)
	if n == 0 {
		return nil, shapeErrorf(opMaterialize, matrix.ErrInvalidDimensions)
	}
	cfg := newConfig(opts...)

	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, circulantErrorf(opMaterialize, err)
	}
	// Each range writes only rows [lo, hi) of out.
	err = forEachRange(n, cfg.workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			for j := 0; j < n; j++ {
				if err := out.Set(i, j, c[OffsetOf(n, i, j)]); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, circulantErrorf(opMaterialize, err)
	}

	return out, nil
}
