// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures: matrices filled by index
//     formulas so every expected value can be recomputed from (i, j).

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// grid returns an r×c float64 matrix with element (i, j) = 10*i + j.
func grid(t testing.TB, r, c int) *matrix.Mat[float64] {
	t.Helper()
	m, err := matrix.FromFunc(r, c, func(i, j int) float64 { return float64(10*i + j) })
	require.NoError(t, err)

	return m
}

// mustAt reads (i, j) or fails the test.
func mustAt[T any](t testing.TB, m matrix.Reader[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// mustVec copies a vector or fails the test.
func mustVec[T any](t testing.TB, v interface{ ToSlice() ([]T, error) }) []T {
	t.Helper()
	out, err := v.ToSlice()
	require.NoError(t, err)

	return out
}

// naiveMul is the reference product over the Reader interface.
func naiveMul(t testing.TB, a, b matrix.Reader[float64]) [][]float64 {
	t.Helper()
	out := make([][]float64, a.Rows())
	for i := range out {
		out[i] = make([]float64, b.Cols())
		for j := range out[i] {
			for k := 0; k < a.Cols(); k++ {
				out[i][j] += mustAt(t, a, i, k) * mustAt(t, b, k, j)
			}
		}
	}

	return out
}

// requireMatrix compares every element of m against want within tol.
func requireMatrix(t testing.TB, want [][]float64, m matrix.Reader[float64], tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols())
		for j := range want[i] {
			require.InDelta(t, want[i][j], mustAt(t, m, i, j), tol, "(%d,%d)", i, j)
		}
	}
}
