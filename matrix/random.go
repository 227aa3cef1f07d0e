// SPDX-License-Identifier: MIT
// Package: matrix
//
// random.go — Gaussian variance-scaling factory.
//
// Contract:
//   - Random(rng, r, c) samples r*c i.i.d. values from N(0, σ²), σ = 1/sqrt(r*c).
//   - Draw order is row-major, one NormFloat64 per element, so a seeded rng
//     reproduces the same matrix bit-for-bit.
//   - rng == nil falls back to the process-wide math/rand source (implicitly
//     seeded, safe for concurrent use). Pass a seeded *rand.Rand for determinism.

package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

// Random returns a rows×cols matrix drawn from N(0, 1/(rows*cols)).
//
// Errors:
//   - ErrInvalidDimensions on negative rows or cols.
//
// Notes:
//   - A zero-area shape returns an empty matrix without consuming the rng.
//   - A *rand.Rand is not safe for concurrent use; share one only within a goroutine.
//
// Complexity: O(r*c).
func Random[T Float](rng *rand.Rand, rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opRandom, fmt.Errorf("(%d,%d): %w", rows, cols, ErrInvalidDimensions))
	}
	m := newDense[T](rows, cols)
	if len(m.data) == 0 {
		return m, nil
	}

	norm := rand.NormFloat64
	if rng != nil {
		norm = rng.NormFloat64
	}
	std := 1 / math.Sqrt(float64(len(m.data)))
	for idx := range m.data {
		m.data[idx] = T(norm() * std)
	}

	return m, nil
}
