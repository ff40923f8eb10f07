// SPDX-License-Identifier: MIT

// Package matrix provides converters between Dense and gonum's mat.Dense,
// so kernels that gonum already implements (products, factorizations) can
// run on the same data without re-implementing them here.
package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a new *mat.Dense of the same shape.
// Errors: ErrNilMatrix for nil input.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	d := asDense(m)
	buf := make([]float64, len(d.data))
	copy(buf, d.data) // gonum takes ownership of buf

	return mat.NewDense(d.r, d.c, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
// Errors: ErrNilMatrix for nil input, ErrInvalidDimensions for empty input.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}
