// SPDX-License-Identifier: MIT

// Package matrix: public read/write contracts shared by every storage variant.
//
// Purpose:
//   - Reader[T] is implemented by *Mat, View and MutView, in either
//     orientation; operators take sources as Reader[T].
//   - Writer[T] is implemented by *Mat and MutView; operators take
//     destinations as Writer[T].
//   - VecReader[T] / VecWriter[T] are the 1-D analogues, implemented by Vec,
//     MutVec, *ColVec and *RowVec.
//
// The interfaces are sealed (unexported method) so every implementation
// carries a layout the backend can translate into a kernel descriptor.
package matrix

// Reader is a read-only rectangular window.
type Reader[T any] interface {
	Rows() int
	Cols() int
	At(i, j int) (T, error)
	String() string
	window() operand[T]
}

// Writer is an exclusive rectangular window.
type Writer[T any] interface {
	Reader[T]
	Set(i, j int, v T) error
	mutWindow() operand[T]
}

// VecReader is a read-only 1-D strided window.
type VecReader[T any] interface {
	Len() int
	At(i int) (T, error)
	String() string
	lineOf() lineOperand[T]
}

// VecWriter is an exclusive 1-D strided window.
type VecWriter[T any] interface {
	VecReader[T]
	Set(i int, v T) error
	mutLineOf() lineOperand[T]
}

// Sampler draws one element; distuv distributions plug in as s.Rand.
type Sampler[T any] func() T

// Compile-time conformance.
var (
	_ Writer[float64]    = (*Mat[float64])(nil)
	_ Writer[float64]    = MutView[float64]{}
	_ Reader[float64]    = View[float64]{}
	_ VecWriter[float64] = MutVec[float64]{}
	_ VecWriter[float64] = (*ColVec[float64])(nil)
	_ VecWriter[float64] = (*RowVec[float64])(nil)
	_ VecReader[float64] = Vec[float64]{}
)

// windowOf extracts the layout of r, rejecting nil owners and zero handles.
func windowOf[T any](r Reader[T]) (operand[T], error) {
	if r == nil {
		return operand[T]{}, ErrNilMatrix
	}
	if m, ok := r.(*Mat[T]); ok && m == nil {
		return operand[T]{}, ErrNilMatrix
	}
	w := r.window()
	if w.st == nil {
		return operand[T]{}, ErrNilMatrix
	}

	return w, nil
}

func mutWindowOf[T any](w Writer[T]) (operand[T], error) {
	if w == nil {
		return operand[T]{}, ErrNilMatrix
	}
	if m, ok := w.(*Mat[T]); ok && m == nil {
		return operand[T]{}, ErrNilMatrix
	}
	o := w.mutWindow()
	if o.st == nil {
		return operand[T]{}, ErrNilMatrix
	}

	return o, nil
}

func lineOfReader[T any](r VecReader[T]) (lineOperand[T], error) {
	if r == nil {
		return lineOperand[T]{}, ErrNilMatrix
	}
	switch v := r.(type) {
	case *ColVec[T]:
		if v == nil {
			return lineOperand[T]{}, ErrNilMatrix
		}
	case *RowVec[T]:
		if v == nil {
			return lineOperand[T]{}, ErrNilMatrix
		}
	}
	ln := r.lineOf()
	if ln.st == nil {
		return lineOperand[T]{}, ErrNilMatrix
	}

	return ln, nil
}

func lineOfWriter[T any](w VecWriter[T]) (lineOperand[T], error) {
	if w == nil {
		return lineOperand[T]{}, ErrNilMatrix
	}
	if _, err := lineOfReader[T](w); err != nil {
		return lineOperand[T]{}, err
	}

	return w.mutLineOf(), nil
}
