// SPDX-License-Identifier: MIT

package blas

import "fmt"

// Vector describes N elements of Data spaced Inc apart (Inc >= 1).
type Vector[T any] struct {
	N    Int
	Inc  Int
	Data []T
}

// NewVector converts (n, inc) to kernel width and checks that data can hold
// 1+(n-1)*inc elements. An empty vector accepts any increment.
func NewVector[T any](data []T, n, inc int) (Vector[T], error) {
	ints, err := toInts(n, inc)
	if err != nil {
		return Vector[T]{}, err
	}
	v := Vector[T]{N: ints[0], Inc: ints[1], Data: data}
	if n == 0 {
		v.Inc = 1 // kernels reject a zero increment even for n == 0

		return v, nil
	}
	if inc < 1 {
		return Vector[T]{}, fmt.Errorf("blas: NewVector(n=%d, inc=%d): %w", n, inc, ErrIncrement)
	}
	if need := 1 + (n-1)*inc; len(data) < need {
		return Vector[T]{}, fmt.Errorf("blas: NewVector needs %d elements, has %d: %w", need, len(data), ErrShortBuffer)
	}

	return v, nil
}

// General describes a row-major Rows×Cols rectangle with leading dimension
// Stride. Trans asks the kernel to read it transposed, so the logical
// operand is Cols×Rows when Trans == Yes.
type General[T any] struct {
	Rows   Int
	Cols   Int
	Stride Int
	Trans  Transpose
	Data   []T
}

// NewGeneral converts extents to kernel width and validates the leading
// dimension and buffer length. The stride of an empty rectangle is raised to
// max(1, cols) because kernels reject a zero leading dimension.
func NewGeneral[T any](data []T, rows, cols, stride int, trans Transpose) (General[T], error) {
	ints, err := toInts(rows, cols, stride)
	if err != nil {
		return General[T]{}, err
	}
	g := General[T]{Rows: ints[0], Cols: ints[1], Stride: ints[2], Trans: trans, Data: data}
	if rows == 0 || cols == 0 {
		if g.Stride < g.Cols || g.Stride < 1 {
			g.Stride = max(g.Cols, 1)
		}

		return g, nil
	}
	if stride < cols {
		return General[T]{}, fmt.Errorf("blas: NewGeneral(cols=%d, stride=%d): %w", cols, stride, ErrIncrement)
	}
	if need := (rows-1)*stride + cols; len(data) < need {
		return General[T]{}, fmt.Errorf("blas: NewGeneral needs %d elements, has %d: %w", need, len(data), ErrShortBuffer)
	}

	return g, nil
}

// OpDims returns the logical extents after applying Trans.
func (g General[T]) OpDims() (rows, cols Int) {
	if g.Trans == Yes {
		return g.Cols, g.Rows
	}

	return g.Rows, g.Cols
}

// T returns the same storage read with the opposite transpose flag.
func (g General[T]) T() General[T] {
	g.Trans = g.Trans.Not()

	return g
}

// Empty reports whether the rectangle holds no elements.
func (g General[T]) Empty() bool { return g.Rows == 0 || g.Cols == 0 }
