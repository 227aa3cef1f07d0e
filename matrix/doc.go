// Package matrix offers a dense, row-major 2-D matrix with shape-checked algebra.
//
// The matrix package provides:
//
//   - Dense[T], a generic float32/float64 container with bounds-checked At/Set.
//   - Element-wise Add, Sub, Neg, Scale, Hadamard, Square and Map.
//   - The matrix product Mul and Transpose.
//   - Random, a Gaussian factory N(0, 1/(rows*cols)) driven by an injectable *rand.Rand.
//   - Equal and AllClose for exact and tolerance-based comparison.
//
// Every producing operation returns a freshly allocated matrix; operands are
// never mutated except through Set and AddInPlace. Shape violations are
// reported as ErrDimensionMismatch and never silently coerced.
//
// See the examples in this package and mlp for usage patterns.
package matrix
