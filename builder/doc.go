// Package builder provides reusable “functional‐options”‐style generators for
// random test matrices consumed by the circulant pipeline and its tests.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG.
//   - Matrix generators (Generator implementations), each returning count
//     independent n×n matrices:
//     – NonNegative:  entries ∼U[0,1).
//     – Positive:     entries 1 + U[0,1).
//     – Uniform:      entries ∼U[−1,1).
//     – Symmetric:    (B + Bᵀ)/2 with B ∼U[0,1).
//     – SPD:          R·Rᵀ with R ∼U[−1,1) (positive semi-definite, definite a.s.).
//   - Fixtures: the catalogue of all generators with stable names.
//
// Guarantees:
//
//   - No hidden globals and no I/O: generators only allocate their result.
//   - Determinism: identical seed and parameters give identical matrices;
//     draws happen in a fixed matrix → row → column order.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors (ErrBadSize, ErrNeedRandSource) for invalid
//     build parameters, wrapped with the generator name.
package builder
