// SPDX-License-Identifier: MIT

package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRegion_DiagonalCells checks the cell-exact overlap of strided lines.
func TestRegion_DiagonalCells(t *testing.T) {
	l := layout{rows: 4, cols: 4, stride: 4}
	d0, ok := l.diag(0)
	require.True(t, ok)
	d1, ok := l.diag(1)
	require.True(t, ok)

	require.True(t, d0.area().sparse)
	require.False(t, l.row(1).area().sparse)
	require.False(t, l.col(1).area().sparse)
	require.False(t, l.t().row(1).area().sparse) // a physical column

	require.False(t, d0.area().overlaps(d1.area()))
	require.True(t, d0.area().overlaps(d0.sub(2, 4).area()))
	require.False(t, d0.sub(0, 2).area().overlaps(d0.sub(2, 4).area()))

	require.False(t, d0.area().overlaps(l.cell(0, 3)))
	require.True(t, d0.area().overlaps(l.cell(3, 3)))
	require.True(t, l.row(2).area().overlaps(d0.area()))
	require.True(t, l.area().overlaps(d1.area()))
	require.False(t, l.sub(1, 0, 4, 1).area().overlaps(d1.area()))
}
