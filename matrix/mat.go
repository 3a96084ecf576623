// SPDX-License-Identifier: MIT

// Package matrix - owned storage (Mat) and its constructors.
//
// Purpose:
//   - Mat owns a contiguous row-major buffer of rows*cols elements
//     (stride == cols) and the borrow table of every view carved from it.
//   - Zero-sized shapes are legal; negative shapes are ErrBadShape.
//   - Constructors guard the allocation (ErrTooLarge) unless
//     WithMemoryCheck(false) is given.
//
// AI-Hints:
//   - Use Slice/SliceMut for O(1) windows; use Clone to detach a window.
//   - T() is O(1) and never copies; Clone() of a transposed view materialises it.
//
// Complexity quicksheet:
//   - Zeros/FromFunc/FromSlice/Random/Identity: O(r*c); T(): O(1).
package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// Mat is an owned dense matrix.
type Mat[T any] struct {
	mutOperand[T]
}

func newMat[T any](st *store[T], rows, cols int) *Mat[T] {
	return &Mat[T]{mutOperand[T]{operand[T]{st: st, lay: packed(rows, cols), id: rootID}}}
}

// T returns the transpose as a shared view over the same storage.
func (m *Mat[T]) T() View[T] {
	return View[T]{operand[T]{st: m.st, lay: m.lay.t(), id: rootID}}
}

// View returns a shared view of the whole matrix.
func (m *Mat[T]) View() View[T] {
	return View[T]{m.operand}
}

// MutView carves an exclusive view of the whole matrix (e.g. to obtain a
// transposed writable window via MutView().T()).
func (m *Mat[T]) MutView() (MutView[T], error) {
	return m.SliceMut(0, 0, m.lay.rows, m.lay.cols)
}

// Zeros returns a rows×cols matrix of zero values.
// MAIN DESCRIPTION:
//   - Allocates a packed row-major buffer; make() zero-fills it.
//
// Errors:
//   - ErrBadShape for negative extents.
//   - ErrTooLarge when rows*cols*sizeof(T) overflows or exceeds physical memory.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Zeros[T any](rows, cols int, opts ...Option) (*Mat[T], error) {
	st, err := newStore[T](rows, cols, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf("Zeros", err)
	}

	return newMat(st, rows, cols), nil
}

// FromFunc returns a rows×cols matrix with element (i, j) = f(i, j),
// filled in row-major order.
func FromFunc[T any](rows, cols int, f func(i, j int) T, opts ...Option) (*Mat[T], error) {
	if f == nil {
		return nil, matrixErrorf("FromFunc", ErrNilMatrix)
	}
	m, err := Zeros[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.st.data[i*cols+j] = f(i, j)
		}
	}

	return m, nil
}

// FromSlice copies data (row-major, len rows*cols) into a new matrix.
// Errors: ErrDimensionMismatch when len(data) != rows*cols.
func FromSlice[T any](rows, cols int, data []T, opts ...Option) (*Mat[T], error) {
	if rows >= 0 && cols >= 0 && len(data) != rows*cols {
		return nil, fmt.Errorf("FromSlice(%dx%d, len=%d): %w", rows, cols, len(data), ErrDimensionMismatch)
	}
	m, err := Zeros[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	copy(m.st.data, data)

	return m, nil
}

// Random returns a rows×cols matrix drawn from sample in row-major order.
// Reproducibility is the sampler's concern (seed its source).
func Random[T any](rows, cols int, sample Sampler[T], opts ...Option) (*Mat[T], error) {
	if sample == nil {
		return nil, matrixErrorf("Random", ErrNilMatrix)
	}

	return FromFunc(rows, cols, func(int, int) T { return sample() }, opts...)
}

// Identity returns the n×n identity.
func Identity[T scalar.Number](n int, opts ...Option) (*Mat[T], error) {
	m, err := Zeros[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	one := scalar.One[T]()
	for i := 0; i < n; i++ {
		m.st.data[i*n+i] = one
	}

	return m, nil
}

// View is a shared, read-only window. It stays valid while the handle it
// was taken from is live; reads overlapping a foreign mutable view fail.
type View[T any] struct {
	operand[T]
}

// T returns the transposed view; v.T().T() reads exactly like v.
func (v View[T]) T() View[T] {
	return View[T]{operand[T]{st: v.st, lay: v.lay.t(), id: v.id}}
}

// MutView is an exclusive window registered in its owner's borrow table.
// Release it to unfreeze the handle it was carved from.
type MutView[T any] struct {
	mutOperand[T]
}

// T returns the transposed window under the same borrow.
func (v MutView[T]) T() MutView[T] {
	return MutView[T]{mutOperand[T]{operand[T]{st: v.st, lay: v.lay.t(), id: v.id}}}
}

// View reborrows the window read-only.
func (v MutView[T]) View() View[T] {
	return View[T]{v.operand}
}

// Release returns the borrow. Copies of v (including v.T()) share it.
// Errors: ErrBorrowed while sub-views are live, ErrReleased on a second call.
func (v MutView[T]) Release() error {
	return v.st.release(v.id)
}

// Live reports whether the view's borrow is still registered.
func (v MutView[T]) Live() bool { return v.st.alive(v.id) }
