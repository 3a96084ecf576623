// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/linalg/matrix"
)

func TestZeros_Shapes(t *testing.T) {
	m, err := matrix.Zeros[float64](0, 3)
	require.NoError(t, err)
	rows, cols := m.Dims()
	require.Equal(t, 0, rows)
	require.Equal(t, 3, cols)
	require.True(t, m.IsEmpty())
	require.Equal(t, "", m.String())

	_, err = matrix.Zeros[float64](-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := matrix.FromSlice(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestZeros_TooLarge covers both the int-overflow and the physical-memory guard.
func TestZeros_TooLarge(t *testing.T) {
	_, err := matrix.Zeros[float64](math.MaxInt/2, 4)
	require.ErrorIs(t, err, matrix.ErrTooLarge)

	restore := matrix.SetTotalMemory(func() uint64 { return 1024 })
	defer restore()

	_, err = matrix.Zeros[float64](64, 64)
	require.ErrorIs(t, err, matrix.ErrTooLarge)
	require.Contains(t, err.Error(), "32 KiB")

	m, err := matrix.Zeros[float64](64, 64, matrix.WithMemoryCheck(false))
	require.NoError(t, err)
	require.Equal(t, 64, m.Rows())
}

func TestString_Format(t *testing.T) {
	m, err := matrix.FromSlice(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
	require.Equal(t, "[1, 3]\n[2, 4]\n", m.T().String())

	c, err := matrix.ColFromSlice([]int{7, 8})
	require.NoError(t, err)
	require.Equal(t, "[7]\n[8]\n", c.String())
	require.Equal(t, "[7, 8]\n", c.T().String())
}

// TestTranspose_Involution checks (mᵀ)ᵀ reads like m and mᵀ(j,i) == m(i,j).
func TestTranspose_Involution(t *testing.T) {
	m := grid(t, 3, 4)
	tt := m.T()
	require.Equal(t, 4, tt.Rows())
	require.Equal(t, 3, tt.Cols())
	require.True(t, tt.IsTransposed())

	back := tt.T()
	require.False(t, back.IsTransposed())
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			want := mustAt[float64](t, m, i, j)
			require.Equal(t, want, mustAt[float64](t, back, i, j))
			require.Equal(t, want, mustAt[float64](t, tt, j, i))
		}
	}
}

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity[int](3)
	require.NoError(t, err)
	vals, err := id.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 0, 0, 1, 0, 0, 0, 1}, vals)
}

// TestClone_PacksTransposed materialises a transposed view into a plain owner.
func TestClone_PacksTransposed(t *testing.T) {
	m := grid(t, 2, 3)
	c, err := m.T().Clone()
	require.NoError(t, err)
	require.False(t, c.IsTransposed())
	require.Equal(t, 2, c.Stride())
	vals, err := c.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 10, 1, 11, 2, 12}, vals)

	// The clone is independent.
	require.NoError(t, c.Set(0, 0, 99))
	require.Equal(t, 0.0, mustAt[float64](t, m, 0, 0))
}

func TestAtSet_OutOfRange(t *testing.T) {
	m := grid(t, 2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
}

type celsius float64

// TestFromFunc_NamedElement exercises a named element type end to end.
func TestFromFunc_NamedElement(t *testing.T) {
	m, err := matrix.FromFunc(2, 2, func(i, j int) celsius { return celsius(i + j) })
	require.NoError(t, err)
	require.NoError(t, matrix.Scale[celsius](m, 2))
	require.Equal(t, celsius(4), mustAt[celsius](t, m, 1, 1))
}

// TestRandom_Uniform draws from a gonum distribution.
func TestRandom_Uniform(t *testing.T) {
	u := distuv.Uniform{Min: -1, Max: 1}
	m, err := matrix.Random(8, 8, u.Rand)
	require.NoError(t, err)
	vals, err := m.ToSlice()
	require.NoError(t, err)
	for _, v := range vals {
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 1.0)
	}

	_, err = matrix.Random[float64](1, 1, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFillApply(t *testing.T) {
	m := grid(t, 2, 3)
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v + float64(i*j) }))
	require.Equal(t, 14.0, mustAt[float64](t, m, 1, 2))

	sub, err := m.SliceMut(0, 1, 2, 3)
	require.NoError(t, err)
	require.NoError(t, sub.Fill(-1))
	require.NoError(t, sub.Release())
	vals, err := m.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []float64{0, -1, -1, 10, -1, -1}, vals)
}

// TestSlice_AllWindows slices every window of small grids and checks each
// element against its source coordinates.
func TestSlice_AllWindows(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {1, 1}, {2, 3}, {3, 2}, {3, 4}} {
		R, C := shape[0], shape[1]
		m := grid(t, R, C)
		for r0 := 0; r0 <= R; r0++ {
			for r1 := r0; r1 <= R; r1++ {
				for c0 := 0; c0 <= C; c0++ {
					for c1 := c0; c1 <= C; c1++ {
						v, err := m.Slice(r0, c0, r1, c1)
						require.NoError(t, err)
						require.Equal(t, r1-r0, v.Rows())
						require.Equal(t, c1-c0, v.Cols())
						for i := 0; i < v.Rows(); i++ {
							for j := 0; j < v.Cols(); j++ {
								require.Equal(t, float64(10*(r0+i)+c0+j), mustAt[float64](t, v, i, j),
									"%dx%d [%d:%d,%d:%d] (%d,%d)", R, C, r0, r1, c0, c1, i, j)
							}
						}

						// The transposed window reads the same cells.
						tv, err := m.T().Slice(c0, r0, c1, r1)
						require.NoError(t, err)
						require.Equal(t, v.String(), tv.T().String())
					}
				}
			}
		}
	}
}

// TestTranspose_DegenerateShapes covers the involution on empty extents.
func TestTranspose_DegenerateShapes(t *testing.T) {
	for _, shape := range [][2]int{{0, 3}, {3, 0}, {0, 0}} {
		m, err := matrix.Zeros[float64](shape[0], shape[1])
		require.NoError(t, err)
		tt := m.T()
		require.Equal(t, shape[1], tt.Rows())
		require.Equal(t, shape[0], tt.Cols())
		require.True(t, tt.IsEmpty())

		back := tt.T()
		require.False(t, back.IsTransposed())
		r, c := back.Dims()
		require.Equal(t, shape, [2]int{r, c})
		require.Equal(t, m.String(), back.String())

		vals, err := back.ToSlice()
		require.NoError(t, err)
		require.Empty(t, vals)
	}
}
