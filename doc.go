// Package circsplit computes circulant approximations of square matrices and
// the splitting remainder that drives circulant-preconditioned iterative
// solvers for Toeplitz-like systems.
//
// What is circsplit?
//
//	A small, pure-Go library that brings together:
//		• Dense matrices: bounds-checked storage, element-wise kernels, gonum interop
//		• Circulant approximation: direct column, Frobenius-optimal mean, max/min envelopes
//		• Splitting: C = circ(c) and N = C − A, so that A = C − N
//		• Fixtures: seeded random matrix families for tests and experiments
//
// Everything is organized under three subpackages:
//
//	matrix/    : Dense, Matrix interface, validators, Add/Sub/Transpose, AllClose
//	circulant/ : offset classes, strategies, Materialize, Remainder, Split
//	builder/   : NonNegative, Positive, Uniform, Symmetric, SPD generators
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
//	sp, _ := circulant.Split(a, circulant.StrategyDirectColumn)
//	fmt.Print(sp.Remainder)
//	// [0, 5, 1]
//	// [0, -4, 1]
//	// [0, -4, -8]
//
// See examples/ for a runnable comparison of strategies across matrix families.
package circsplit
