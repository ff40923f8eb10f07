// Package matrix offers a small dense linear-algebra toolkit used by the
// circulant approximation pipeline.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked interface over two-dimensional float64 arrays,
//     and Dense, its row-major implementation.
//   - Element-wise kernels (Add, Sub, Scale) and Transpose, each with a
//     *Dense fast-path and a generic fallback.
//   - Centralized validators (ValidateSquare, ValidateVecLen, ...) returning
//     sentinel errors matched with errors.Is.
//   - AllClose for tolerance-based comparison in tests and pipelines.
//   - ToGonum/FromGonum to hand data to gonum.org/v1/gonum/mat and back.
//
// Kernels allocate fresh results; only Set and Apply write in place.
package matrix
