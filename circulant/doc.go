// Package circulant computes circulant approximations of square matrices and
// the splitting remainder used by circulant-preconditioned iterative solvers.
//
// Given a dense n×n matrix A, the package builds a generator vector c, the
// circulant matrix C with C[i,j] = c[(i−j) mod n], and the remainder N = C − A,
// so that A = C − N.
//
// Pipeline (each stage is a pure function of its inputs):
//
//	A ──OffsetClass──▶ cyclic diagonals ──Approximate──▶ c ──Materialize──▶ C ──Remainder──▶ N
//
// Strategies:
//
//   - StrategyDirectColumn: c = A[:,0].
//   - StrategyOptimalNorm:  c[k] = mean of cyclic diagonal k, divided by ω
//     (ω = 1 gives the Frobenius-optimal circulant).
//   - StrategyMax / StrategyMin: per-diagonal maximum / minimum envelopes.
//     These are heuristics with no optimality or convergence guarantee.
//
// Errors are sentinels (ErrShape, ErrInvalidOmega, ...) matched with errors.Is.
// Nothing here performs I/O, caches results, or holds shared state; identical
// inputs give bit-identical outputs, with or without WithWorkers.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
//	sp, _ := circulant.Split(a, circulant.StrategyOptimalNorm)
//	fmt.Println(sp.Generator) // [5 5 5]
package circulant
