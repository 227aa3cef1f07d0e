// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape checks.
//   - Keep kernels minimal by delegating shape comparisons here.
//   - Return sentinel errors wrapped with the offending shapes so call sites
//     can add their operation tag uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and O(1).
//
// Note:
//   - Validators assume non-nil operands; kernels perform the nil check first.

package matrix

import "fmt"

// validatorErrorf wraps ErrDimensionMismatch with a validator tag and both shapes.
func validatorErrorf(tag string, a, b Shaped) error {
	return fmt.Errorf("%s: (%d,%d) vs (%d,%d): %w",
		tag, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Use for Add/Sub/Hadamard kernels and in-place updates.
// Returns nil or a wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", a, b)
	}

	return nil
}

// ValidateInner ensures a×b is defined, i.e. a.Cols() == b.Rows().
// Complexity: O(1).
func ValidateInner(a, b Shaped) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateInner", a, b)
	}

	return nil
}

// ValidateColumn ensures v is an n×1 column vector.
//
// Used by the network to check inputs and targets against layer widths.
// Complexity: O(1).
func ValidateColumn(v Shaped, n int) error {
	if v.Rows() != n || v.Cols() != 1 {
		return fmt.Errorf("ValidateColumn: (%d,%d) vs (%d,1): %w",
			v.Rows(), v.Cols(), n, ErrDimensionMismatch)
	}

	return nil
}
