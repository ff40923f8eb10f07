// SPDX-License-Identifier: MIT
// Package: circsplit/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` via builderErrorf.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates that a count or dimension parameter is below its minimum.
// Usage: if errors.Is(err, ErrBadSize) { /* report invalid size */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates that a generator was called without an RNG.
// Supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf wraps a sentinel with the generator name and a formatted detail.
// Result: "<Method>: <detail>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
