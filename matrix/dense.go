// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep ownership exclusive: constructors and Clone always allocate fresh storage.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Values: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix over a floating-point element type.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is a valid empty 0×0 matrix.
type Dense[T Float] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for Shaped & fmt.Stringer conformance.
var (
	_ Shaped       = (*Dense[float64])(nil)
	_ fmt.Stringer = (*Dense[float32])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Zero-area shapes (0×n, n×0) are legal and own a zero-length buffer.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Float](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNew, fmt.Errorf("(%d,%d): %w", rows, cols, ErrInvalidDimensions))
	}

	return newDense[T](rows, cols), nil
}

// newDense allocates without validation; callers guarantee rows,cols >= 0.
func newDense[T Float](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// NewEmpty returns an empty 0×0 matrix.
// Complexity: O(1).
func NewEmpty[T Float]() *Dense[T] {
	return &Dense[T]{}
}

// NewFromData creates an r×c matrix holding a copy of data (row-major).
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//   - ErrDimensionMismatch when len(data) != rows*cols.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewFromData[T Float](rows, cols int, data []T) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opFromData, fmt.Errorf("(%d,%d): %w", rows, cols, ErrInvalidDimensions))
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFromData,
			fmt.Errorf("len %d for (%d,%d): %w", len(data), rows, cols, ErrDimensionMismatch))
	}
	m := newDense[T](rows, cols)
	copy(m.data, data)

	return m, nil
}

// NewColumn creates an n×1 column vector holding a copy of values.
// Complexity: O(n).
func NewColumn[T Float](values ...T) *Dense[T] {
	m := newDense[T](len(values), 1)
	copy(m.data, values)

	return m
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of stored elements (rows*cols).
// Complexity: O(1).
func (m *Dense[T]) Len() int { return len(m.data) }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns a wrapped sentinel.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// This is the only element-level mutation on the public surface.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations of the clone never affect the original.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Values returns a row-major copy of the elements.
// Complexity: O(r*c).
func (m *Dense[T]) Values() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Sum returns the sum of all elements in row-major order (0 for empty).
// Complexity: O(r*c).
func (m *Dense[T]) Sum() T {
	var s T
	for _, v := range m.data {
		s += v
	}

	return s
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
