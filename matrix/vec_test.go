// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/linalg/matrix"
)

func TestVecConstructors(t *testing.T) {
	c, err := matrix.ColFromFunc(3, func(i int) int { return i * i })
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 4}, mustVec[int](t, c))

	o, err := matrix.Ones[complex64](2)
	require.NoError(t, err)
	require.Equal(t, []complex64{1, 1}, mustVec[complex64](t, o))

	z, err := matrix.ZerosRow[float32](0)
	require.NoError(t, err)
	require.Equal(t, 0, z.Len())
	require.Equal(t, "[]\n", z.String())

	_, err = matrix.ZerosCol[int](-1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.ColFromFunc[int](2, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	u := distuv.Uniform{Min: 2, Max: 3}
	r, err := matrix.RandomRow(16, u.Rand)
	require.NoError(t, err)
	for _, v := range mustVec[float64](t, r) {
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 3.0)
	}
}

// TestVecTranspose_SharesStorage writes through a row and reads the column.
func TestVecTranspose_SharesStorage(t *testing.T) {
	c, err := matrix.ColFromSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	r := c.T()
	require.NoError(t, r.Set(1, 20))
	v, err := c.At(1)
	require.NoError(t, err)
	require.Equal(t, 20.0, v)
	require.Equal(t, "[1, 20, 3]\n", r.String())
	require.Equal(t, "[1]\n[20]\n[3]\n", r.T().String())
}

// TestVecSliceMut_Borrow covers exclusive sub-vectors of an owned vector.
func TestVecSliceMut_Borrow(t *testing.T) {
	c, err := matrix.ColFromSlice([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)

	head, err := c.SliceMut(0, 2)
	require.NoError(t, err)
	tail, err := c.SliceMut(2, 5)
	require.NoError(t, err)
	_, err = c.SliceMut(1, 3)
	require.ErrorIs(t, err, matrix.ErrAliasing)

	require.NoError(t, head.Fill(0))
	require.NoError(t, tail.Apply(func(i, x int) int { return x * 10 }))
	// The owner is frozen over the lent cells.
	require.ErrorIs(t, c.Set(0, 7), matrix.ErrAliasing)

	require.NoError(t, head.Release())
	require.NoError(t, tail.Release())
	require.ErrorIs(t, tail.Set(0, 1), matrix.ErrReleased)
	require.Equal(t, []int{0, 0, 30, 40, 50}, mustVec[int](t, c))

	_, err = c.SliceMut(3, 6)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
