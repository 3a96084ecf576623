// SPDX-License-Identifier: MIT

// Package matrix - shared window surface of Mat, View and MutView.
//
// Purpose:
//   - operand carries (store, layout, borrow handle) and implements every
//     read-side method once; the public variants embed it.
//   - mutOperand adds the write side and every operation that carves new
//     exclusive handles (SliceMut, SplitAtRow, stripes, line iterators).
//
// Safety model:
//   - Every element access validates the touched cells against the owner's
//     borrow table; violations surface as ErrAliasing / ErrReleased.
//   - Carving a mutable sub-window registers it as a child of the source.
//
// Complexity quicksheet:
//   - At/Set: O(live handles); Slice/SliceMut/Row/Col/Diag: O(live handles);
//     Fill/Apply/ToSlice/Clone: O(r*c).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxFill     = "Fill"
	ctxApply    = "Apply"
	ctxSlice    = "Slice"
	ctxSliceMut = "SliceMut"
	ctxRow      = "Row"
	ctxCol      = "Col"
	ctxDiag     = "Diag"
	ctxLines    = "IterLinesMut"
	ctxSplit    = "Split"
	ctxStripes  = "Stripes"
	ctxClone    = "Clone"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// operand is the read-side core: a layout over a shared store plus the
// borrow handle through which accesses are validated.
type operand[T any] struct {
	st  *store[T]
	lay layout
	id  borrowID
}

// Rows returns the number of logical rows.
func (o operand[T]) Rows() int { return o.lay.rows }

// Cols returns the number of logical columns.
func (o operand[T]) Cols() int { return o.lay.cols }

// Dims returns (rows, cols).
func (o operand[T]) Dims() (int, int) { return o.lay.rows, o.lay.cols }

// Stride returns the leading dimension of the underlying storage.
func (o operand[T]) Stride() int { return o.lay.stride }

// IsTransposed reports whether the window reads its storage transposed.
func (o operand[T]) IsTransposed() bool { return o.lay.trans }

// IsEmpty reports a zero-sized window.
func (o operand[T]) IsEmpty() bool { return o.lay.empty() }

func (o operand[T]) window() operand[T] { return o }

func (o operand[T]) inBounds(i, j int) bool {
	return i >= 0 && i < o.lay.rows && j >= 0 && j < o.lay.cols
}

// At returns element (i, j).
// Errors: ErrOutOfRange, ErrReleased (handle released), ErrAliasing (cell
// held by a foreign mutable view).
func (o operand[T]) At(i, j int) (T, error) {
	var zero T
	if !o.inBounds(i, j) {
		return zero, viewErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	if err := o.st.access(o.id, o.lay.cell(i, j)); err != nil {
		return zero, viewErrorf(ctxAt, i, j, err)
	}

	return o.st.data[o.lay.at(i, j)], nil
}

// checkRect validates 0 <= r0 <= r1 <= rows and 0 <= c0 <= c1 <= cols.
func (o operand[T]) checkRect(method string, r0, c0, r1, c1 int) error {
	if r0 < 0 || c0 < 0 || r0 > r1 || c0 > c1 || r1 > o.lay.rows || c1 > o.lay.cols {
		return fmt.Errorf("%s([%d,%d)x[%d,%d) of %dx%d): %w",
			method, r0, r1, c0, c1, o.lay.rows, o.lay.cols, ErrOutOfRange)
	}

	return nil
}

// Slice returns a shared view of the logical rectangle [r0,r1)×[c0,c1).
// MAIN DESCRIPTION:
//   - O(1) re-window: offset rebased, stride and orientation unchanged.
//
// Behavior highlights:
//   - Half-open bounds; empty rectangles are legal.
//   - For a transposed window the physical rectangle is computed with
//     swapped roles, so m.T().Slice(a,b,c,d) covers m.Slice(b,a,d,c).
//
// Errors:
//   - ErrOutOfRange for bounds violations.
//   - ErrAliasing when the rectangle overlaps a live mutable view that does
//     not own this window.
func (o operand[T]) Slice(r0, c0, r1, c1 int) (View[T], error) {
	if err := o.checkRect(ctxSlice, r0, c0, r1, c1); err != nil {
		return View[T]{}, err
	}
	sub := o.lay.sub(r0, c0, r1, c1)
	if err := o.st.access(o.id, sub.area()); err != nil {
		return View[T]{}, matrixErrorf(ctxSlice, err)
	}

	return View[T]{operand[T]{st: o.st, lay: sub, id: o.id}}, nil
}

// Row returns logical row i as a strided vector.
func (o operand[T]) Row(i int) (Vec[T], error) {
	if i < 0 || i >= o.lay.rows {
		return Vec[T]{}, viewErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return Vec[T]{o.lineAt(o.lay.row(i))}, nil
}

// Col returns logical column j as a strided vector.
func (o operand[T]) Col(j int) (Vec[T], error) {
	if j < 0 || j >= o.lay.cols {
		return Vec[T]{}, viewErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return Vec[T]{o.lineAt(o.lay.col(j))}, nil
}

// Diag returns diagonal k: k = 0 is the main diagonal, k > 0 starts at
// (0, k) above it, k < 0 starts at (-k, 0) below it.
// Errors: ErrNoDiagonal (wraps ErrOutOfRange) when the diagonal is empty.
func (o operand[T]) Diag(k int) (Vec[T], error) {
	ln, ok := o.lay.diag(k)
	if !ok {
		return Vec[T]{}, fmt.Errorf("%s(%d) of %dx%d: %w", ctxDiag, k, o.lay.rows, o.lay.cols, ErrNoDiagonal)
	}

	return Vec[T]{o.lineAt(ln)}, nil
}

func (o operand[T]) lineAt(ln line) lineOperand[T] {
	return lineOperand[T]{st: o.st, ln: ln, id: o.id}
}

// IterRows iterates the logical rows front to back (or back to front).
// For a transposed window these are the physical columns.
func (o operand[T]) IterRows() *Iter[Vec[T]] {
	return newIter(o.lay.rows, func(i int) Vec[T] { return Vec[T]{o.lineAt(o.lay.row(i))} })
}

// IterCols iterates the logical columns.
func (o operand[T]) IterCols() *Iter[Vec[T]] {
	return newIter(o.lay.cols, func(j int) Vec[T] { return Vec[T]{o.lineAt(o.lay.col(j))} })
}

// HStripes splits the rows into bands of size rows (the last may be
// shorter). Len() == ceil(rows/size).
func (o operand[T]) HStripes(size int) (*Iter[View[T]], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%s(size=%d): %w", ctxStripes, size, ErrBadShape)
	}
	bands := hbands(o.lay, size)

	return newIter(len(bands), func(k int) View[T] {
		return View[T]{operand[T]{st: o.st, lay: bands[k], id: o.id}}
	}), nil
}

// VStripes splits the columns into bands of size columns (the last may be
// narrower). Len() == ceil(cols/size).
func (o operand[T]) VStripes(size int) (*Iter[View[T]], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%s(size=%d): %w", ctxStripes, size, ErrBadShape)
	}
	bands := vbands(o.lay, size)

	return newIter(len(bands), func(k int) View[T] {
		return View[T]{operand[T]{st: o.st, lay: bands[k], id: o.id}}
	}), nil
}

// ToSlice copies the logical contents in row-major order.
func (o operand[T]) ToSlice() ([]T, error) {
	if err := o.st.access(o.id, o.lay.area()); err != nil {
		return nil, err
	}
	out := make([]T, 0, o.lay.rows*o.lay.cols)
	for i := 0; i < o.lay.rows; i++ {
		for j := 0; j < o.lay.cols; j++ {
			out = append(out, o.st.data[o.lay.at(i, j)])
		}
	}

	return out, nil
}

// Clone materialises the window into a new packed owner (a transposed
// window becomes a plain one holding the transposed values).
func (o operand[T]) Clone() (*Mat[T], error) {
	vals, err := o.ToSlice()
	if err != nil {
		return nil, matrixErrorf(ctxClone, err)
	}
	st := &store[T]{data: vals, table: newBorrowTable(o.st.table.log)}

	return newMat(st, o.lay.rows, o.lay.cols), nil
}

// String renders one bracketed, comma-separated line per logical row,
// elements formatted with %v: "[1, 2]\n[3, 4]\n".
func (o operand[T]) String() string {
	if err := o.st.access(o.id, o.lay.area()); err != nil {
		return "<" + err.Error() + ">"
	}
	var b strings.Builder
	for i := 0; i < o.lay.rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < o.lay.cols; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%v", o.st.data[o.lay.at(i, j)])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// mutOperand adds the write side.
type mutOperand[T any] struct {
	operand[T]
}

func (o mutOperand[T]) mutWindow() operand[T] { return o.operand }

// Set writes element (i, j).
// Errors: ErrOutOfRange, ErrReleased, ErrAliasing (the cell is lent to a live
// sub-view, i.e. this handle is frozen there).
func (o mutOperand[T]) Set(i, j int, v T) error {
	if !o.inBounds(i, j) {
		return viewErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if err := o.st.access(o.id, o.lay.cell(i, j)); err != nil {
		return viewErrorf(ctxSet, i, j, err)
	}
	o.st.data[o.lay.at(i, j)] = v

	return nil
}

// Fill sets every element of the window to v.
func (o mutOperand[T]) Fill(v T) error {
	return o.Apply(func(_, _ int, _ T) T { return v })
}

// Apply replaces every element by f(i, j, old), row by row.
func (o mutOperand[T]) Apply(f func(i, j int, v T) T) error {
	if f == nil {
		return matrixErrorf(ctxApply, ErrNilMatrix)
	}
	if err := o.st.access(o.id, o.lay.area()); err != nil {
		return matrixErrorf(ctxApply, err)
	}
	for i := 0; i < o.lay.rows; i++ {
		for j := 0; j < o.lay.cols; j++ {
			p := o.lay.at(i, j)
			o.st.data[p] = f(i, j, o.st.data[p])
		}
	}

	return nil
}

// SliceMut carves an exclusive view of [r0,r1)×[c0,c1).
// MAIN DESCRIPTION:
//   - Registers the physical rectangle as a child of this handle; until the
//     child is released, writes through this handle to those cells fail.
//
// Errors:
//   - ErrOutOfRange for bounds violations.
//   - ErrAliasing when the rectangle overlaps another live mutable view
//     (sibling or foreign).
//   - ErrReleased when this handle has been released.
//
// Notes:
//   - Touching rectangles are disjoint: [0,5) and [5,10) may both be held.
func (o mutOperand[T]) SliceMut(r0, c0, r1, c1 int) (MutView[T], error) {
	if err := o.checkRect(ctxSliceMut, r0, c0, r1, c1); err != nil {
		return MutView[T]{}, err
	}
	sub := o.lay.sub(r0, c0, r1, c1)
	id, err := o.st.acquire(o.id, sub.area())
	if err != nil {
		return MutView[T]{}, matrixErrorf(ctxSliceMut, err)
	}

	return MutView[T]{mutOperand[T]{operand[T]{st: o.st, lay: sub, id: id}}}, nil
}

// RowMut carves an exclusive handle on logical row i.
func (o mutOperand[T]) RowMut(i int) (MutVec[T], error) {
	if i < 0 || i >= o.lay.rows {
		return MutVec[T]{}, viewErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return o.carveLine(ctxRow, o.lay.row(i))
}

// ColMut carves an exclusive handle on logical column j.
func (o mutOperand[T]) ColMut(j int) (MutVec[T], error) {
	if j < 0 || j >= o.lay.cols {
		return MutVec[T]{}, viewErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return o.carveLine(ctxCol, o.lay.col(j))
}

// DiagMut carves an exclusive handle on diagonal k.
func (o mutOperand[T]) DiagMut(k int) (MutVec[T], error) {
	ln, ok := o.lay.diag(k)
	if !ok {
		return MutVec[T]{}, fmt.Errorf("%s(%d) of %dx%d: %w", ctxDiag, k, o.lay.rows, o.lay.cols, ErrNoDiagonal)
	}

	return o.carveLine(ctxDiag, ln)
}

func (o mutOperand[T]) carveLine(method string, ln line) (MutVec[T], error) {
	id, err := o.st.acquire(o.id, ln.area())
	if err != nil {
		return MutVec[T]{}, matrixErrorf(method, err)
	}

	return MutVec[T]{mutLineOperand: mutLineOperand[T]{lineOperand[T]{st: o.st, ln: ln, id: id}}, own: true}, nil
}

// IterRowsMut iterates the logical rows as exclusive vectors.
// The iterator holds one borrow over the whole window; yielded rows are
// disjoint by construction and share it. Release the iterator when done.
func (o mutOperand[T]) IterRowsMut() (*LinesMut[T], error) {
	return o.linesMut(o.lay.rows, o.lay.row)
}

// IterColsMut iterates the logical columns as exclusive vectors.
func (o mutOperand[T]) IterColsMut() (*LinesMut[T], error) {
	return o.linesMut(o.lay.cols, o.lay.col)
}

func (o mutOperand[T]) linesMut(n int, project func(int) line) (*LinesMut[T], error) {
	id, err := o.st.acquire(o.id, o.lay.area())
	if err != nil {
		return nil, matrixErrorf(ctxLines, err)
	}
	at := func(k int) MutVec[T] {
		return MutVec[T]{mutLineOperand: mutLineOperand[T]{lineOperand[T]{st: o.st, ln: project(k), id: id}}}
	}

	return &LinesMut[T]{Iter: newIter(n, at), table: o.st.table, id: id}, nil
}

// SplitAtRow splits into rows [0,r) and [r,rows), both exclusive.
func (o mutOperand[T]) SplitAtRow(r int) (top, bottom MutView[T], err error) {
	if r < 0 || r > o.lay.rows {
		return MutView[T]{}, MutView[T]{}, viewErrorf(ctxSplit, r, 0, ErrOutOfRange)
	}
	views, err := o.carveAll([]layout{
		o.lay.sub(0, 0, r, o.lay.cols),
		o.lay.sub(r, 0, o.lay.rows, o.lay.cols),
	})
	if err != nil {
		return MutView[T]{}, MutView[T]{}, err
	}

	return views[0], views[1], nil
}

// SplitAtCol splits into columns [0,c) and [c,cols), both exclusive.
func (o mutOperand[T]) SplitAtCol(c int) (left, right MutView[T], err error) {
	if c < 0 || c > o.lay.cols {
		return MutView[T]{}, MutView[T]{}, viewErrorf(ctxSplit, 0, c, ErrOutOfRange)
	}
	views, err := o.carveAll([]layout{
		o.lay.sub(0, 0, o.lay.rows, c),
		o.lay.sub(0, c, o.lay.rows, o.lay.cols),
	})
	if err != nil {
		return MutView[T]{}, MutView[T]{}, err
	}

	return views[0], views[1], nil
}

// carveAll registers pairwise-disjoint layouts as children in one step.
func (o mutOperand[T]) carveAll(lays []layout) ([]MutView[T], error) {
	areas := make([]region, len(lays))
	for k, l := range lays {
		areas[k] = l.area()
	}
	ids, err := o.st.acquireAll(o.id, areas)
	if err != nil {
		return nil, matrixErrorf(ctxSplit, err)
	}
	out := make([]MutView[T], len(lays))
	for k, l := range lays {
		out[k] = MutView[T]{mutOperand[T]{operand[T]{st: o.st, lay: l, id: ids[k]}}}
	}

	return out, nil
}

// HStripesMut splits the rows into exclusive bands of size rows.
// All bands are registered up front; Release the returned set when done.
func (o mutOperand[T]) HStripesMut(size int) (*StripesMut[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%s(size=%d): %w", ctxStripes, size, ErrBadShape)
	}

	return o.stripesMut(hbands(o.lay, size))
}

// VStripesMut splits the columns into exclusive bands of size columns.
func (o mutOperand[T]) VStripesMut(size int) (*StripesMut[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%s(size=%d): %w", ctxStripes, size, ErrBadShape)
	}

	return o.stripesMut(vbands(o.lay, size))
}

func (o mutOperand[T]) stripesMut(bands []layout) (*StripesMut[T], error) {
	views, err := o.carveAll(bands)
	if err != nil {
		return nil, err
	}

	return &StripesMut[T]{
		Iter:  newIter(len(views), func(k int) MutView[T] { return views[k] }),
		table: o.st.table,
		views: views,
	}, nil
}
