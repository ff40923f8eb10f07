// SPDX-License-Identifier: MIT
// Package: circsplit/builder
//
// generators.go — random square matrix families.
//
// Contract:
//   - count ≥ MinCount and n ≥ MinDim (else ErrBadSize).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Returns count independent n×n *matrix.Dense values, index-addressable.
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Draw order: matrix index asc, then row asc, then column asc.
//
// Complexity:
//   - NonNegative/Positive/Uniform/Symmetric: O(count·n²).
//   - SPD: O(count·n³) for the R·Rᵀ product.

package builder

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/circsplit/matrix"
)

// Method tags used in error wrapping.
const (
	MethodNonNegative = "NonNegative"
	MethodPositive    = "Positive"
	MethodUniform     = "Uniform"
	MethodSymmetric   = "Symmetric"
	MethodSPD         = "SPD"
)

// MinCount is the minimal number of matrices a generator produces.
const MinCount = 1

// MinDim is the minimal matrix dimension n.
const MinDim = 1

// Sampling ranges (named, no magic numbers).
const (
	positiveShift = 1.0 // Positive adds this to U[0,1)
	uniformLo     = -1.0
	uniformHi     = 1.0
)

// Generator produces count random n×n matrices.
type Generator func(count, n int, opts ...BuilderOption) ([]*matrix.Dense, error)

// Fixture pairs a Generator with its stable name.
type Fixture struct {
	Name     string
	Generate Generator
}

// Fixtures lists every generator in a fixed order.
func Fixtures() []Fixture {
	return []Fixture{
		{Name: MethodNonNegative, Generate: NonNegative},
		{Name: MethodPositive, Generate: Positive},
		{Name: MethodUniform, Generate: Uniform},
		{Name: MethodSymmetric, Generate: Symmetric},
		{Name: MethodSPD, Generate: SPD},
	}
}

// NonNegative returns count matrices with entries drawn from U[0,1).
func NonNegative(count, n int, opts ...BuilderOption) ([]*matrix.Dense, error) {
	return generate(MethodNonNegative, count, n, newBuilderConfig(opts...), unitDraw(0))
}

// Positive returns count matrices with entries drawn from 1 + U[0,1).
func Positive(count, n int, opts ...BuilderOption) ([]*matrix.Dense, error) {
	return generate(MethodPositive, count, n, newBuilderConfig(opts...), unitDraw(positiveShift))
}

// Uniform returns count matrices with entries drawn from U[−1,1).
func Uniform(count, n int, opts ...BuilderOption) ([]*matrix.Dense, error) {
	return generate(MethodUniform, count, n, newBuilderConfig(opts...), rangeDraw(uniformLo, uniformHi))
}

// Symmetric returns count matrices (B + Bᵀ)/2 with B drawn from U[0,1).
// Each result satisfies M[i,j] == M[j,i] exactly.
func Symmetric(count, n int, opts ...BuilderOption) ([]*matrix.Dense, error) {
	bs, err := generate(MethodSymmetric, count, n, newBuilderConfig(opts...), unitDraw(0))
	if err != nil {
		return nil, err
	}
	for idx, b := range bs {
		if bs[idx], err = matrix.Symmetrize(b); err != nil {
			return nil, builderErrorf(MethodSymmetric, err, "matrix %d", idx)
		}
	}

	return bs, nil
}

// SPD returns count matrices R·Rᵀ with R drawn from U[−1,1).
// The product is computed by gonum's mat.Dense.Mul.
func SPD(count, n int, opts ...BuilderOption) ([]*matrix.Dense, error) {
	rs, err := generate(MethodSPD, count, n, newBuilderConfig(opts...), rangeDraw(uniformLo, uniformHi))
	if err != nil {
		return nil, err
	}

	var prod mat.Dense
	for idx, r := range rs {
		g, err := matrix.ToGonum(r)
		if err != nil {
			return nil, builderErrorf(MethodSPD, err, "matrix %d", idx)
		}
		prod.Reset()
		prod.Mul(g, g.T())
		if rs[idx], err = matrix.FromGonum(&prod); err != nil {
			return nil, builderErrorf(MethodSPD, err, "matrix %d", idx)
		}
	}

	return rs, nil
}

// drawFn maps one RNG draw to a matrix entry.
type drawFn func(cfg builderConfig) float64

// unitDraw returns shift + U[0,1).
func unitDraw(shift float64) drawFn {
	return func(cfg builderConfig) float64 { return shift + cfg.rng.Float64() }
}

// rangeDraw returns U[lo,hi).
func rangeDraw(lo, hi float64) drawFn {
	return func(cfg builderConfig) float64 { return lo + (hi-lo)*cfg.rng.Float64() }
}

// generate validates parameters and fills count fresh n×n matrices via draw.
func generate(method string, count, n int, cfg builderConfig, draw drawFn) ([]*matrix.Dense, error) {
	// 1) Validate parameters early (fail fast, no draws on invalid input).
	if count < MinCount {
		return nil, builderErrorf(method, ErrBadSize, "count=%d < min=%d", count, MinCount)
	}
	if n < MinDim {
		return nil, builderErrorf(method, ErrBadSize, "n=%d < min=%d", n, MinDim)
	}
	if cfg.rng == nil {
		return nil, builderErrorf(method, ErrNeedRandSource, "no rng configured")
	}

	// 2) Fill in matrix → row → column order.
	out := make([]*matrix.Dense, count)
	for idx := 0; idx < count; idx++ {
		m, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, builderErrorf(method, err, "matrix %d", idx)
		}
		m.Apply(func(_, _ int, _ float64) float64 { return draw(cfg) })
		out[idx] = m
	}

	return out, nil
}
