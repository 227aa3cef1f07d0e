// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for the Dense kernels.
//   • Keep all data finite and seeded so failures reproduce exactly.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// tol is the absolute tolerance used for float64 algebra identities.
const tol = 1e-12

// MustDense ALLOCATES an r×c zero *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds an r×c matrix from row-major vals or fails the test.
func NewFilledDense(t testing.TB, r, c int, vals ...float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewFromData(r, c, vals)
	require.NoError(t, err)

	return m
}

// RandFilledDense RETURNS an r×c matrix with uniform values in [-1,1) from a seeded rng.
// Determinism: same (r, c, seed) → same matrix.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return NewFilledDense(t, r, c, vals...)
}

// toGonum copies m into a gonum *mat.Dense for reference computations.
// Zero-area shapes are not representable in gonum and are rejected by the caller.
func toGonum(m *matrix.Dense[float64]) *mat.Dense {
	r, c := m.Shape()

	return mat.NewDense(r, c, m.Values())
}

// requireClose asserts equal shapes and element-wise closeness within tol.
func requireClose(t testing.TB, want, got *matrix.Dense[float64]) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%vgot:\n%v", want, got)
}
