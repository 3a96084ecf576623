// SPDX-License-Identifier: MIT

// Package matrix - 1-D strided vectors.
//
// Purpose:
//   - Vec / MutVec are projections of a row, column or diagonal of a window
//     (buffer, offset, length, increment); they never copy.
//   - ColVec / RowVec own their buffer, the 1-D analogue of Mat. Their
//     orientation matters only where a matrix product needs it
//     (MulVec returns a column, VecMul a row).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

const (
	ctxVecAt  = "Vec.At"
	ctxVecSet = "Vec.Set"
)

// lineOperand is the read-side core of every vector.
type lineOperand[T any] struct {
	st *store[T]
	ln line
	id borrowID
}

// Len returns the number of elements.
func (v lineOperand[T]) Len() int { return v.ln.n }

// Inc returns the physical step between consecutive elements.
func (v lineOperand[T]) Inc() int { return v.ln.inc }

func (v lineOperand[T]) lineOf() lineOperand[T] { return v }

// At returns element i.
func (v lineOperand[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.ln.n {
		return zero, fmt.Errorf("%s(%d) of %d: %w", ctxVecAt, i, v.ln.n, ErrOutOfRange)
	}
	if err := v.st.access(v.id, v.ln.cell(i)); err != nil {
		return zero, fmt.Errorf("%s(%d): %w", ctxVecAt, i, err)
	}

	return v.st.data[v.ln.at(i)], nil
}

func (v lineOperand[T]) checkRange(start, end int) error {
	if start < 0 || start > end || end > v.ln.n {
		return fmt.Errorf("Vec.Slice([%d,%d) of %d): %w", start, end, v.ln.n, ErrOutOfRange)
	}

	return nil
}

// Slice returns the shared sub-vector [start, end).
func (v lineOperand[T]) Slice(start, end int) (Vec[T], error) {
	if err := v.checkRange(start, end); err != nil {
		return Vec[T]{}, err
	}
	sub := v.ln.sub(start, end)
	if err := v.st.access(v.id, sub.area()); err != nil {
		return Vec[T]{}, matrixErrorf(ctxSlice, err)
	}

	return Vec[T]{lineOperand[T]{st: v.st, ln: sub, id: v.id}}, nil
}

// Iter returns an exact-size, double-ended iterator over the elements.
// The whole vector is validated once, up front.
func (v lineOperand[T]) Iter() (*Iter[T], error) {
	if err := v.st.access(v.id, v.ln.area()); err != nil {
		return nil, err
	}

	return newIter(v.ln.n, func(i int) T { return v.st.data[v.ln.at(i)] }), nil
}

// ToSlice copies the elements into a new slice.
func (v lineOperand[T]) ToSlice() ([]T, error) {
	it, err := v.Iter()
	if err != nil {
		return nil, err
	}

	return it.Collect(), nil
}

// String renders "[a, b, c]\n".
func (v lineOperand[T]) String() string {
	vals, err := v.ToSlice()
	if err != nil {
		return "<" + err.Error() + ">"
	}

	return formatRow(vals)
}

func formatRow[T any](vals []T) string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for k, x := range vals {
		if k > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteString(_fmtRowClose)

	return b.String()
}

// mutLineOperand adds the write side.
type mutLineOperand[T any] struct {
	lineOperand[T]
}

func (v mutLineOperand[T]) mutLineOf() lineOperand[T] { return v.lineOperand }

// Set writes element i.
func (v mutLineOperand[T]) Set(i int, x T) error {
	if i < 0 || i >= v.ln.n {
		return fmt.Errorf("%s(%d) of %d: %w", ctxVecSet, i, v.ln.n, ErrOutOfRange)
	}
	if err := v.st.access(v.id, v.ln.cell(i)); err != nil {
		return fmt.Errorf("%s(%d): %w", ctxVecSet, i, err)
	}
	v.st.data[v.ln.at(i)] = x

	return nil
}

// Fill sets every element to x.
func (v mutLineOperand[T]) Fill(x T) error {
	return v.Apply(func(int, T) T { return x })
}

// Apply replaces every element by f(i, old).
func (v mutLineOperand[T]) Apply(f func(i int, x T) T) error {
	if f == nil {
		return matrixErrorf(ctxApply, ErrNilMatrix)
	}
	if err := v.st.access(v.id, v.ln.area()); err != nil {
		return matrixErrorf(ctxApply, err)
	}
	for i := 0; i < v.ln.n; i++ {
		p := v.ln.at(i)
		v.st.data[p] = f(i, v.st.data[p])
	}

	return nil
}

// SliceMut carves an exclusive sub-vector [start, end).
func (v mutLineOperand[T]) SliceMut(start, end int) (MutVec[T], error) {
	if err := v.checkRange(start, end); err != nil {
		return MutVec[T]{}, err
	}
	sub := v.ln.sub(start, end)
	id, err := v.st.acquire(v.id, sub.area())
	if err != nil {
		return MutVec[T]{}, matrixErrorf(ctxSliceMut, err)
	}

	return MutVec[T]{mutLineOperand: mutLineOperand[T]{lineOperand[T]{st: v.st, ln: sub, id: id}}, own: true}, nil
}

// Vec is a shared strided vector.
type Vec[T any] struct {
	lineOperand[T]
}

// MutVec is an exclusive strided vector. Vectors yielded by a line iterator
// share the iterator's borrow; the others own one and must be released.
type MutVec[T any] struct {
	mutLineOperand[T]
	own bool
}

// View reborrows the vector read-only.
func (v MutVec[T]) View() Vec[T] { return Vec[T]{v.lineOperand} }

// Release returns the vector's borrow. It is a no-op for vectors yielded by
// a line iterator (release the iterator instead).
func (v MutVec[T]) Release() error {
	if !v.own {
		return nil
	}

	return v.st.release(v.id)
}

// ColVec is an owned column vector.
type ColVec[T any] struct {
	mutLineOperand[T]
}

// RowVec is an owned row vector.
type RowVec[T any] struct {
	mutLineOperand[T]
}

// Vec returns a shared view of the whole vector.
func (c *ColVec[T]) Vec() Vec[T] { return Vec[T]{c.lineOperand} }

// Vec returns a shared view of the whole vector.
func (r *RowVec[T]) Vec() Vec[T] { return Vec[T]{r.lineOperand} }

// T reinterprets the column as a row over the same storage.
func (c *ColVec[T]) T() *RowVec[T] {
	return &RowVec[T]{c.mutLineOperand}
}

// T reinterprets the row as a column over the same storage.
func (r *RowVec[T]) T() *ColVec[T] {
	return &ColVec[T]{r.mutLineOperand}
}

// String renders one bracketed element per line.
func (c *ColVec[T]) String() string {
	vals, err := c.ToSlice()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	var b strings.Builder
	for _, x := range vals {
		b.WriteString(formatRow([]T{x}))
	}

	return b.String()
}

// newLineStore allocates an owned vector of n elements, stored as one
// physical row so every element maps to a distinct cell.
func newLineStore[T any](tag string, n int, opts []Option) (mutLineOperand[T], error) {
	st, err := newStore[T](1, n, gatherOptions(opts...))
	if err != nil {
		return mutLineOperand[T]{}, matrixErrorf(tag, err)
	}

	return mutLineOperand[T]{lineOperand[T]{st: st, ln: line{n: n, inc: 1, stride: max(n, 1)}, id: rootID}}, nil
}

func fillLine[T any](v mutLineOperand[T], f func(i int) T) {
	for i := 0; i < v.ln.n; i++ {
		v.st.data[i] = f(i)
	}
}

// ZerosCol returns a zero column vector of length n.
func ZerosCol[T any](n int, opts ...Option) (*ColVec[T], error) {
	v, err := newLineStore[T]("ZerosCol", n, opts)
	if err != nil {
		return nil, err
	}

	return &ColVec[T]{v}, nil
}

// ZerosRow returns a zero row vector of length n.
func ZerosRow[T any](n int, opts ...Option) (*RowVec[T], error) {
	v, err := newLineStore[T]("ZerosRow", n, opts)
	if err != nil {
		return nil, err
	}

	return &RowVec[T]{v}, nil
}

// ColFromFunc returns the column vector with element i = f(i).
func ColFromFunc[T any](n int, f func(i int) T, opts ...Option) (*ColVec[T], error) {
	if f == nil {
		return nil, matrixErrorf("ColFromFunc", ErrNilMatrix)
	}
	c, err := ZerosCol[T](n, opts...)
	if err != nil {
		return nil, err
	}
	fillLine(c.mutLineOperand, f)

	return c, nil
}

// RowFromFunc returns the row vector with element i = f(i).
func RowFromFunc[T any](n int, f func(i int) T, opts ...Option) (*RowVec[T], error) {
	if f == nil {
		return nil, matrixErrorf("RowFromFunc", ErrNilMatrix)
	}
	r, err := ZerosRow[T](n, opts...)
	if err != nil {
		return nil, err
	}
	fillLine(r.mutLineOperand, f)

	return r, nil
}

// ColFromSlice copies data into a new column vector.
func ColFromSlice[T any](data []T, opts ...Option) (*ColVec[T], error) {
	return ColFromFunc(len(data), func(i int) T { return data[i] }, opts...)
}

// RowFromSlice copies data into a new row vector.
func RowFromSlice[T any](data []T, opts ...Option) (*RowVec[T], error) {
	return RowFromFunc(len(data), func(i int) T { return data[i] }, opts...)
}

// RandomCol draws n elements from sample.
func RandomCol[T any](n int, sample Sampler[T], opts ...Option) (*ColVec[T], error) {
	if sample == nil {
		return nil, matrixErrorf("RandomCol", ErrNilMatrix)
	}

	return ColFromFunc(n, func(int) T { return sample() }, opts...)
}

// RandomRow draws n elements from sample.
func RandomRow[T any](n int, sample Sampler[T], opts ...Option) (*RowVec[T], error) {
	if sample == nil {
		return nil, matrixErrorf("RandomRow", ErrNilMatrix)
	}

	return RowFromFunc(n, func(int) T { return sample() }, opts...)
}

// Ones is a convenience for tests and examples: a column of ones.
func Ones[T scalar.Number](n int, opts ...Option) (*ColVec[T], error) {
	return ColFromFunc(n, func(int) T { return scalar.One[T]() }, opts...)
}
