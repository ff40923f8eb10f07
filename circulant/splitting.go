// SPDX-License-Identifier: MIT

package circulant

import (
	"fmt"

	"github.com/katalvlaran/circsplit/matrix"
)

const (
	opRemainder = "Remainder"
	opSplit     = "Split"
)

// Splitting is the decomposition A = C − N produced by Split.
// All fields are freshly allocated and owned by the caller.
type Splitting struct {
	Strategy  Strategy      // strategy that produced Generator
	Generator []float64     // c, length n
	Circulant *matrix.Dense // C[i,j] = c[(i−j) mod n]
	Remainder *matrix.Dense // N = C − A
}

// Remainder returns N = C(c) − A, where C(c) is Materialize(c).
// Each entry is N[i,j] = c[(i−j) mod n] − A[i,j]; the subtraction is the only
// floating-point step.
//
// Errors:
//   - matrix.ErrNilMatrix for nil A.
//   - ErrShape when A is not square or len(c) != n; a nil c also matches
//     matrix.ErrNilMatrix. Nothing is returned on error.
//
// Complexity: O(n²).
func Remainder(a matrix.Matrix, c []float64, opts ...Option) (*matrix.Dense, error) {
	n, err := validateSquare(opRemainder, a)
	if err != nil {
		return nil, err
	}
	if err := matrix.ValidateVecLen(c, n); err != nil {
		return nil, shapeErrorf(fmt.Sprintf("%s(len(c)=%d, n=%d)", opRemainder, len(c), n), err)
	}

	circ, err := Materialize(c, opts...)
	if err != nil {
		return nil, circulantErrorf(opRemainder, err)
	}
	rem, err := matrix.Sub(circ, a)
	if err != nil {
		return nil, circulantErrorf(opRemainder, err)
	}

	return rem, nil
}

// Split runs the whole pipeline: Approximate → Materialize → Remainder.
// It returns either a complete Splitting or an error, never a partial result.
// C is materialized once and reused for N.
func Split(a matrix.Matrix, s Strategy, opts ...Option) (*Splitting, error) {
	c, err := Approximate(a, s, opts...)
	if err != nil {
		return nil, circulantErrorf(opSplit, err)
	}
	circ, err := Materialize(c, opts...)
	if err != nil {
		return nil, circulantErrorf(opSplit, err)
	}
	rem, err := matrix.Sub(circ, a)
	if err != nil {
		return nil, circulantErrorf(opSplit, err)
	}

	return &Splitting{
		Strategy:  s,
		Generator: c,
		Circulant: circ,
		Remainder: rem,
	}, nil
}
