// SPDX-License-Identifier: MIT

// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition and subtraction, transpose, and scalar
// scaling. All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches.
package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// Add returns a new Matrix containing the element-wise sum of a and b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Stage 4 (Finalize): return result.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (*Dense, error) {
	return elementwise(opAdd, a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a new Matrix containing the element-wise difference a - b.
// Same stages and fast-path as Add. The subtraction is the only floating-point
// operation per cell, so Sub(a, b)[i,j] == a[i,j] - b[i,j] exactly.
// Complexity: O(r·c) time and memory.
func Sub(a, b Matrix) (*Dense, error) {
	return elementwise(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// elementwise is the shared kernel behind Add and Sub.
func elementwise(op string, a, b Matrix, f func(x, y float64) float64) (*Dense, error) {
	// Stage 1: Validate inputs non-nil and shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}

	// Stage 2: Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// direct element-wise pass on backing slices
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = f(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var (
		i, j   int // loop iterators
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // safe: bounds ensured
			bv, _ = b.At(i, j) // safe: same shape
			res.data[i*cols+j] = f(av, bv)
		}
	}

	// Stage 4: Return result
	return res, nil
}

// Transpose returns a new Dense that is the transpose of m.
// Stage 1 (Validate): nil-check.
// Stage 2 (Prepare): allocate Dense(cols×rows).
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Time Complexity: O(r·c); Space Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	// Stage 1: Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Stage 2: Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Stage 3: Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j) // safe: bounds ensured
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new Dense where each element of m is multiplied by alpha.
// Complexity: O(r·c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := asDense(m).Clone().(*Dense) // detached copy, same shape
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// asDense returns m itself when it is already *Dense, otherwise a dense copy.
// Assumes m is non-nil with positive dimensions.
func asDense(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d
	}
	rows, cols := m.Rows(), m.Cols()
	d := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j) // safe: bounds ensured
			d.data[i*cols+j] = v
		}
	}

	return d
}
