// SPDX-License-Identifier: MIT

// Package circulant - circulant approximation strategies.
//
// Every strategy maps a square n×n Matrix A to a fresh generator vector c of
// length n. DirectColumn copies the first column. OptimalNorm, Max and Min
// aggregate each cyclic diagonal:
//
//  1. For shift distance m = 1..n, reduce the entries of offset class
//     k = m mod n into d[m−1].
//  2. Rotate into generator order: c[k] = d[(k−1) mod n].
//
// Step 2 is a one-slot rotation that undoes the 1-based shift enumeration, so
// c[k] always ends up holding the aggregate of offset class k, and
// Materialize(c)[i,j] = c[(i−j) mod n] places it back on the same diagonal.
//
// Determinism:
//   - Fixed enumeration order; reductions run over rows in ascending order,
//     so sequential and worker-partitioned runs are bit-identical.
//
// NaN/Inf in A are not rejected. OptimalNorm propagates NaN into the mean of
// its diagonal. Max and Min follow gonum/floats and skip NaN, so only an
// all-NaN diagonal yields NaN.

package circulant

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/circsplit/matrix"
)

// Operation tags for error wrapping.
const (
	opDirectColumn = "DirectColumn"
	opOptimalNorm  = "OptimalNorm"
	opMax          = "Max"
	opMin          = "Min"
	opApproximate  = "Approximate"
)

// reducer folds the n entries of one cyclic diagonal into a single value.
type reducer func(diag []float64) float64

// validateSquare checks A for nil and squareness and returns its dimension.
func validateSquare(tag string, a matrix.Matrix) (int, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, circulantErrorf(tag, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, shapeErrorf(tag, err)
	}
	n := a.Rows()
	if n < 1 {
		return 0, shapeErrorf(tag, matrix.ErrInvalidDimensions)
	}

	return n, nil
}

// DirectColumn returns c = A[:, 0], i.e. c[i] = A[i,0].
//
// Errors: matrix.ErrNilMatrix; ErrShape when A is not square.
// Complexity: O(n).
func DirectColumn(a matrix.Matrix) ([]float64, error) {
	n, err := validateSquare(opDirectColumn, a)
	if err != nil {
		return nil, err
	}

	if d, ok := a.(*matrix.Dense); ok {
		c, err := d.Col(0)
		if err != nil {
			return nil, circulantErrorf(opDirectColumn, err)
		}
		return c, nil
	}

	c := make([]float64, n)
	for i := 0; i < n; i++ {
		if c[i], err = a.At(i, 0); err != nil {
			return nil, circulantErrorf(opDirectColumn, err)
		}
	}

	return c, nil
}

// OptimalNorm returns the per-cyclic-diagonal mean of A divided by omega.
// With omega = 1 the materialized circulant is the closest circulant matrix
// to A in the Frobenius norm.
//
// Errors:
//   - matrix.ErrNilMatrix; ErrShape when A is not square.
//   - ErrInvalidOmega when omega is 0, negative, NaN or ±Inf.
//
// Complexity: O(n²).
func OptimalNorm(a matrix.Matrix, omega float64) ([]float64, error) {
	return optimalNorm(a, newConfig(WithOmega(omega)))
}

// Max returns, for each cyclic diagonal, its largest entry.
// The result is a one-sided envelope, not a norm minimizer.
//
// Errors: matrix.ErrNilMatrix; ErrShape when A is not square.
// Complexity: O(n²).
func Max(a matrix.Matrix) ([]float64, error) {
	return aggregate(opMax, a, floats.Max, defaultWorkers)
}

// Min returns, for each cyclic diagonal, its smallest entry.
// For every offset, Min ≤ OptimalNorm(ω=1) ≤ Max.
//
// Errors: matrix.ErrNilMatrix; ErrShape when A is not square.
// Complexity: O(n²).
func Min(a matrix.Matrix) ([]float64, error) {
	return aggregate(opMin, a, floats.Min, defaultWorkers)
}

// Approximate dispatches on s. Options:
//   - WithOmega: scale for StrategyOptimalNorm (default DefaultOmega).
//   - WithWorkers: concurrent aggregation over disjoint offset ranges.
//
// Errors: those of the selected strategy, or ErrUnknownStrategy.
func Approximate(a matrix.Matrix, s Strategy, opts ...Option) ([]float64, error) {
	cfg := newConfig(opts...)

	switch s {
	case StrategyDirectColumn:
		return DirectColumn(a)
	case StrategyOptimalNorm:
		return optimalNorm(a, cfg)
	case StrategyMax:
		return aggregate(opMax, a, floats.Max, cfg.workers)
	case StrategyMin:
		return aggregate(opMin, a, floats.Min, cfg.workers)
	default:
		return nil, fmt.Errorf("%s(%s): %w", opApproximate, s, ErrUnknownStrategy)
	}
}

// optimalNorm validates ω, then averages each diagonal and divides by ω.
func optimalNorm(a matrix.Matrix, cfg config) ([]float64, error) {
	omega := cfg.omega
	if omega <= 0 || math.IsNaN(omega) || math.IsInf(omega, 0) {
		return nil, fmt.Errorf("%s(omega=%g): %w", opOptimalNorm, omega, ErrInvalidOmega)
	}
	mean := func(diag []float64) float64 {
		return floats.Sum(diag) / float64(len(diag)) / omega
	}

	return aggregate(opOptimalNorm, a, mean, cfg.workers)
}

// aggregate runs reduce over every cyclic diagonal of A, enumerated by shift
// distance, and returns the rotated generator vector.
func aggregate(tag string, a matrix.Matrix, reduce reducer, workers int) ([]float64, error) {
	n, err := validateSquare(tag, a)
	if err != nil {
		return nil, err
	}

	// d[m-1] holds the aggregate for shift distance m; each range owns d[lo:hi).
	d := make([]float64, n)
	err = forEachRange(n, workers, func(lo, hi int) error {
		diag := make([]float64, n) // per-range scratch
		for idx := lo; idx < hi; idx++ {
			k := (idx + 1) % n // shift distance m = idx+1 → offset class m mod n
			if err := gatherDiagonal(a, n, k, diag); err != nil {
				return err
			}
			d[idx] = reduce(diag)
		}
		return nil
	})
	if err != nil {
		return nil, circulantErrorf(tag, err)
	}

	return remapShiftAggregates(d), nil
}

// gatherDiagonal fills dst[i] = A[i, (i−k) mod n] for every row i.
func gatherDiagonal(a matrix.Matrix, n, k int, dst []float64) error {
	var err error
	for i := 0; i < n; i++ {
		if dst[i], err = a.At(i, columnOnOffset(n, i, k)); err != nil {
			return err
		}
	}

	return nil
}

// remapShiftAggregates rotates shift-distance aggregates into generator
// order: c[k] = d[(k−1) mod n].
func remapShiftAggregates(d []float64) []float64 {
	n := len(d)
	c := make([]float64, n)
	for k := 0; k < n; k++ {
		c[k] = d[(k-1+n)%n]
	}

	return c
}
