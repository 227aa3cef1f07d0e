// SPDX-License-Identifier: MIT

// Package matrix: shared types and operation tags.
// This file holds ONLY the element constraint, the shape abstraction consumed
// by validators, and the operation tags used in error wrappers.
package matrix

import "golang.org/x/exp/constraints"

// Float is the element constraint for Dense: any floating-point type
// (float32 or float64, including named types over them).
type Float interface {
	constraints.Float
}

// Shaped is the minimal view validators need: the (rows, cols) pair.
// *Dense[T] satisfies it for every T, which keeps validators non-generic.
type Shaped interface {
	// Rows returns the number of rows.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns.
	// Complexity: O(1).
	Cols() int
}

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew        = "NewDense"
	opFromData   = "NewFromData"
	opRandom     = "Random"
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opHadamard   = "Hadamard"
	opAddInPlace = "AddInPlace"
	opAllClose   = "AllClose"
)

// Dense method tags used in denseErrorf.
const (
	ctxAt  = "At"
	ctxSet = "Set"
)
