// SPDX-License-Identifier: MIT
// Package: circsplit/circulant
//
// options.go — functional options and deterministic defaults.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on meaningless structural inputs (worker
//     count < 1). Numeric parameters that the taxonomy treats as user input
//     (ω) are validated by the operation itself and surface as errors.
//   • newConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • omega   = DefaultOmega (1.0)
//   • workers = 1 (sequential; no goroutines)

package circulant

// DefaultOmega is the OptimalNorm scale used when WithOmega is not supplied.
const DefaultOmega = 1.0

const defaultWorkers = 1

// Option customizes Approximate, Materialize, Remainder and Split.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates all knobs; passed by value to kernels.
type config struct {
	omega   float64 // OptimalNorm divisor; validated at use
	workers int     // ≥1; 1 means sequential
}

// newConfig constructs a config with deterministic defaults and applies
// all options in order (last-wins).
func newConfig(opts ...Option) config {
	cfg := config{
		omega:   DefaultOmega,
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOmega sets the OptimalNorm scale ω. It has no effect on the other strategies.
// ω ≤ 0, NaN or ±Inf is reported as ErrInvalidOmega by the approximation call.
func WithOmega(omega float64) Option {
	return func(c *config) {
		c.omega = omega
	}
}

// WithWorkers partitions offsets (approximation) or rows (materialization)
// into at most w disjoint ranges processed concurrently. Results are
// bit-identical to the sequential path. Panics when w < 1.
//
// When w > 1 the input Matrix must tolerate concurrent At calls
// (*matrix.Dense does).
func WithWorkers(w int) Option {
	if w < 1 {
		panic("circulant: WithWorkers(w < 1)")
	}
	return func(c *config) {
		c.workers = w
	}
}
