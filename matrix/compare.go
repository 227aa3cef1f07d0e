// SPDX-License-Identifier: MIT
// Package: matrix
//
// compare.go — exact and tolerance-based equality.
//
// Policy:
//   - Shapes must match; a shape mismatch is never "approximately equal".
//   - NaN != anything; +Inf equals +Inf; -Inf equals -Inf.

package matrix

import "math"

// Equal reports whether a and b have the same shape and identical elements.
// Nil operands are equal only to each other.
// Complexity: O(r*c).
func Equal[T Float](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for idx, v := range a.data {
		if v != b.data[idx] {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose[T Float](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if err := checkBinary(opAllClose, a, b, ValidateSameShape); err != nil {
		return false, err
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var x, y float64
	for idx := range a.data {
		x, y = float64(a.data[idx]), float64(b.data[idx])
		if x == y { // covers equal infinities
			continue
		}
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return false, nil
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}
