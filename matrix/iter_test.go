// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// TestIterRows_SizeHint checks Len() == back - front after every step.
func TestIterRows_SizeHint(t *testing.T) {
	m := grid(t, 4, 3)
	it := m.IterRows()
	require.Equal(t, 4, it.Len())

	first, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 3, it.Len())
	require.Equal(t, []float64{0, 1, 2}, mustVec[float64](t, first))

	last, ok := it.NextBack()
	require.True(t, ok)
	require.Equal(t, 2, it.Len())
	require.Equal(t, []float64{30, 31, 32}, mustVec[float64](t, last))

	it.Skip(1)
	require.Equal(t, 1, it.Len())
	mid, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, []float64{20, 21, 22}, mustVec[float64](t, mid))

	require.Equal(t, 0, it.Len())
	_, ok = it.Next()
	require.False(t, ok)
	_, ok = it.NextBack()
	require.False(t, ok)
	require.Equal(t, 0, it.Skip(5).Len())
}

// TestIterCols_Backward walks columns in reverse with their positions.
func TestIterCols_Backward(t *testing.T) {
	m := grid(t, 2, 3)
	var pos []int
	var heads []float64
	for j, c := range m.IterCols().Backward() {
		pos = append(pos, j)
		v, err := c.At(1)
		require.NoError(t, err)
		heads = append(heads, v)
	}
	require.Equal(t, []int{2, 1, 0}, pos)
	require.Equal(t, []float64{12, 11, 10}, heads)
}

// TestIter_BreakKeepsRemainder stops a range loop early.
func TestIter_BreakKeepsRemainder(t *testing.T) {
	m := grid(t, 2, 5)
	it := m.IterCols()
	for j := range it.All() {
		if j == 1 {
			break
		}
	}
	require.Equal(t, 3, it.Len())
}

// TestTransposedRows_AreColumns: rows of mᵀ are the columns of m.
func TestTransposedRows_AreColumns(t *testing.T) {
	m := grid(t, 3, 4)
	rows := m.T().IterRows()
	require.Equal(t, 4, rows.Len())
	for j, r := range rows.All() {
		col, err := m.Col(j)
		require.NoError(t, err)
		require.Equal(t, mustVec[float64](t, col), mustVec[float64](t, r))
		require.Equal(t, 4, r.Inc()) // stride of the owner
	}
}

type pos struct{ r, c int }

// TestDiag_Offsets uses coordinates as elements so every diagonal is
// self-describing.
func TestDiag_Offsets(t *testing.T) {
	m, err := matrix.FromFunc(3, 5, func(i, j int) pos { return pos{i, j} })
	require.NoError(t, err)

	cases := []struct {
		k    int
		want []pos
	}{
		{0, []pos{{0, 0}, {1, 1}, {2, 2}}},
		{2, []pos{{0, 2}, {1, 3}, {2, 4}}},
		{3, []pos{{0, 3}, {1, 4}}},
		{4, []pos{{0, 4}}},
		{-1, []pos{{1, 0}, {2, 1}}},
		{-2, []pos{{2, 0}}},
	}
	for _, tc := range cases {
		d, err := m.Diag(tc.k)
		require.NoError(t, err, "k=%d", tc.k)
		require.Equal(t, len(tc.want), d.Len(), "k=%d", tc.k)
		require.Equal(t, tc.want, mustVec[pos](t, d), "k=%d", tc.k)
	}

	for _, k := range []int{5, -3, 100} {
		_, err = m.Diag(k)
		require.ErrorIs(t, err, matrix.ErrNoDiagonal, "k=%d", k)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "k=%d", k)
	}

	// Diagonal of the transposed view: mᵀ(0,1)=m(1,0), mᵀ(1,2)=m(2,1).
	d, err := m.T().Diag(1)
	require.NoError(t, err)
	require.Equal(t, []pos{{1, 0}, {2, 1}}, mustVec[pos](t, d))
}

// TestVecIter_DoubleEnded covers element iteration on a strided column.
func TestVecIter_DoubleEnded(t *testing.T) {
	m := grid(t, 4, 3)
	c, err := m.Col(2)
	require.NoError(t, err)
	it, err := c.Iter()
	require.NoError(t, err)
	require.Equal(t, 4, it.Len())

	back, ok := it.NextBack()
	require.True(t, ok)
	require.Equal(t, 32.0, back)
	it.Skip(1)

	var rest []float64
	for k, v := range it.All() {
		require.Equal(t, float64(10*k+2), v)
		rest = append(rest, v)
	}
	require.Equal(t, []float64{12, 22}, rest)

	sub, err := c.Slice(1, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{12, 22}, mustVec[float64](t, sub))
	_, err = c.Slice(2, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowCol_OutOfRange covers line accessors' bounds.
func TestRowCol_OutOfRange(t *testing.T) {
	m := grid(t, 2, 2)
	_, err := m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	r, err := m.Row(0)
	require.NoError(t, err)
	_, err = r.At(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestIter_ReverseMirrorsForward: for every skip offset, walking the rest
// backwards visits the forward sequence in reverse.
func TestIter_ReverseMirrorsForward(t *testing.T) {
	m := grid(t, 5, 3)
	n := m.IterRows().Len()
	for skip := 0; skip < n; skip++ {
		var fwd, bwd [][]float64
		var fwdPos, bwdPos []int
		for i, r := range m.IterRows().Skip(skip).All() {
			fwdPos = append(fwdPos, i)
			fwd = append(fwd, mustVec[float64](t, r))
		}
		for i, r := range m.IterRows().Skip(skip).Backward() {
			bwdPos = append(bwdPos, i)
			bwd = append(bwd, mustVec[float64](t, r))
		}
		require.Len(t, fwd, n-skip, "skip=%d", skip)
		for k := range fwd {
			require.Equal(t, fwd[k], bwd[len(bwd)-1-k], "skip=%d", skip)
			require.Equal(t, fwdPos[k], bwdPos[len(bwdPos)-1-k], "skip=%d", skip)
		}
	}

	c, err := m.Col(1)
	require.NoError(t, err)
	for skip := 0; skip < c.Len(); skip++ {
		it, err := c.Iter()
		require.NoError(t, err)
		fwd := it.Skip(skip).Collect()
		it, err = c.Iter()
		require.NoError(t, err)
		var bwd []float64
		for _, x := range it.Skip(skip).Backward() {
			bwd = append(bwd, x)
		}
		for k := range fwd {
			require.Equal(t, fwd[k], bwd[len(bwd)-1-k], "skip=%d", skip)
		}
	}
}
