// SPDX-License-Identifier: MIT
// Package matrix provides the Dense algebra: element-wise addition,
// subtraction, negation, scalar scaling, Hadamard product, matrix product,
// transpose and element-wise function application.
//
// Contract:
//   - Every producing operation allocates a fresh result; operands are never mutated.
//   - Binary operations validate nil operands first, then shapes, and fail with
//     ErrNilMatrix / ErrDimensionMismatch before touching any storage.
//   - Unary operations have no shape constraint and cannot fail.
//
// Determinism:
//   - Fixed loop orders (flat 0..n-1 for element-wise kernels, i→k→j for Mul).

package matrix

// checkBinary runs the shared nil → shape validation sequence for binary kernels.
func checkBinary[T Float](tag string, a, b *Dense[T], shape func(a, b Shaped) error) error {
	if a == nil || b == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}
	if err := shape(a, b); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// Add returns a new matrix holding the element-wise sum m + b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): single flat pass over both buffers.
// Complexity: O(r·c) time and memory.
func (m *Dense[T]) Add(b *Dense[T]) (*Dense[T], error) {
	if err := checkBinary(opAdd, m, b, ValidateSameShape); err != nil {
		return nil, err
	}
	res := newDense[T](m.r, m.c)
	for idx := range res.data {
		res.data[idx] = m.data[idx] + b.data[idx]
	}

	return res, nil
}

// Neg returns a new matrix with every element negated.
// Complexity: O(r·c).
func (m *Dense[T]) Neg() *Dense[T] {
	res := newDense[T](m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = -v
	}

	return res
}

// Sub returns m - b, computed as m + (-b).
// Complexity: O(r·c) time and memory.
func (m *Dense[T]) Sub(b *Dense[T]) (*Dense[T], error) {
	if err := checkBinary(opSub, m, b, ValidateSameShape); err != nil {
		return nil, err
	}
	res, err := m.Add(b.Neg())
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return res, nil
}

// Scale returns k·m.
// Complexity: O(r·c).
func (m *Dense[T]) Scale(k T) *Dense[T] {
	res := newDense[T](m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = k * v
	}

	return res
}

// Hadamard returns the element-wise product m ⊙ b.
// Complexity: O(r·c).
func (m *Dense[T]) Hadamard(b *Dense[T]) (*Dense[T], error) {
	if err := checkBinary(opHadamard, m, b, ValidateSameShape); err != nil {
		return nil, err
	}
	res := newDense[T](m.r, m.c)
	for idx := range res.data {
		res.data[idx] = m.data[idx] * b.data[idx]
	}

	return res, nil
}

// Square returns m ⊙ m. It cannot fail: the operand always matches itself.
// Complexity: O(r·c).
func (m *Dense[T]) Square() *Dense[T] {
	res := newDense[T](m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = v * v
	}

	return res
}

// Mul performs standard matrix multiplication m × b.
// MAIN DESCRIPTION:
//   - Plain sum-of-products; no blocking or SIMD.
//
// Implementation:
//   - Stage 1: nil-check and inner-dimension match (m.Cols == b.Rows).
//   - Stage 2: allocate (m.Rows × b.Cols) zero result.
//   - Stage 3: i→k→j loops; each output cell accumulates in ascending k.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense[T]) Mul(b *Dense[T]) (*Dense[T], error) {
	if err := checkBinary(opMul, m, b, ValidateInner); err != nil {
		return nil, err
	}
	aRows, aCols, bCols := m.r, m.c, b.c
	res := newDense[T](aRows, bCols)

	// da layout: i*aCols + k; db layout: k*bCols + j.
	var i, j, k int
	var rowA, rowB, rowR int
	var av T
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for k = 0; k < aCols; k++ {
			av = m.data[rowA+k]
			rowB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new (c×r) matrix with result(i,j) = m(j,i).
// Complexity: O(r·c).
func (m *Dense[T]) Transpose() *Dense[T] {
	res := newDense[T](m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res
}

// Map returns a new matrix with f applied to every element in row-major order.
// f should be pure; it is called exactly once per element.
// Complexity: O(r·c) calls to f.
func (m *Dense[T]) Map(f func(T) T) *Dense[T] {
	res := newDense[T](m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = f(v)
	}

	return res
}

// AddInPlace performs m += b.
// It is all-or-nothing: on a nil operand or shape mismatch m is left untouched.
// Complexity: O(r·c), no allocation.
func (m *Dense[T]) AddInPlace(b *Dense[T]) error {
	if err := checkBinary(opAddInPlace, m, b, ValidateSameShape); err != nil {
		return err
	}
	for idx := range m.data {
		m.data[idx] += b.data[idx]
	}

	return nil
}
