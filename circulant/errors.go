// SPDX-License-Identifier: MIT
// Package circulant: sentinel error set.
// All exported operations return these sentinels wrapped with a call-site tag;
// callers match them with errors.Is. No operation panics on user input.

package circulant

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is returned when A is not square, is empty, or when a generator
	// vector's length does not match A's dimension. The underlying matrix
	// sentinel (matrix.ErrNonSquare, matrix.ErrDimensionMismatch, ...) is
	// wrapped alongside it.
	ErrShape = errors.New("circulant: shape mismatch")

	// ErrOffsetRange indicates a cyclic offset k outside [0, n).
	ErrOffsetRange = errors.New("circulant: offset out of range")

	// ErrInvalidOmega is returned by OptimalNorm when ω is zero, negative, NaN or ±Inf.
	ErrInvalidOmega = errors.New("circulant: omega must be finite and > 0")

	// ErrUnknownStrategy is returned for a Strategy value or name outside the enum.
	ErrUnknownStrategy = errors.New("circulant: unknown strategy")
)

// circulantErrorf wraps an underlying error with the given tag.
func circulantErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf tags a shape violation so that it matches both ErrShape and cause.
func shapeErrorf(tag string, cause error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrShape, cause)
}
