// SPDX-License-Identifier: MIT

// Package matrix - matrix-vector and matrix-matrix products.
//
// Purpose:
//   - Gemv / Gemm accept any storage variant in either orientation and map
//     each operand to a kernel descriptor: offset into the shared buffer,
//     owner stride as leading dimension, Trans = Yes for transposed windows.
//   - A transposed output is handled by the blas layer (Cᵀ = op(B)ᵀ·op(A)ᵀ),
//     so every orientation combination reaches exactly one kernel call.
//
// Errors (in order of detection):
//   - ErrNilMatrix, borrow violations (ErrReleased / ErrAliasing),
//     ErrAliasing when the output overlaps an input,
//     ErrDimensionMismatch, blas.ErrOverflow.
//
// Complexity:
//   - Gemv O(m*n); Gemm O(m*n*k) on the selected kernels.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/blas"
	"github.com/katalvlaran/linalg/scalar"
)

// Gemv computes y = alpha*a*x + beta*y.
// beta == 0 overwrites y (NaNs in y do not propagate).
func Gemv[T scalar.Number](alpha T, a Reader[T], x VecReader[T], beta T, y VecWriter[T], opts ...Option) error {
	const tag = "Gemv"
	wa, err := readWindow(tag, a)
	if err != nil {
		return err
	}
	lx, err := lineOfReader(x)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	ly, err := lineOfWriter(y)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	if err = lx.st.access(lx.id, lx.ln.area()); err != nil {
		return matrixErrorf(tag, err)
	}
	if err = ly.st.access(ly.id, ly.ln.area()); err != nil {
		return matrixErrorf(tag, err)
	}
	if sameStorage(ly.st, wa.st, ly.ln.area(), wa.lay.area()) || sameStorage(ly.st, lx.st, ly.ln.area(), lx.ln.area()) {
		return matrixErrorf(tag, ErrAliasing)
	}
	if wa.lay.cols != lx.ln.n || wa.lay.rows != ly.ln.n {
		return fmt.Errorf("%s(a=%dx%d, x=%d, y=%d): %w", tag, wa.lay.rows, wa.lay.cols, lx.ln.n, ly.ln.n, ErrDimensionMismatch)
	}

	ga, err := generalOf(wa)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	vx, vy, err := vectorPair(lx, ly)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	if err = blas.Gemv(kernelsFor[T](tag, gatherOptions(opts...)), alpha, ga, vx, beta, vy); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// Gemm computes c = alpha*a*b + beta*c.
// MAIN DESCRIPTION:
//   - a, b and c may each be owned, a (strided) view, or transposed.
//   - beta == 0 overwrites c.
//
// Behavior highlights:
//   - The output may not share cells with either input (ErrAliasing); the
//     kernels read a and b while writing c.
//   - An empty inner dimension scales c by beta.
//
// Complexity:
//   - Time O(m*n*k).
func Gemm[T scalar.Number](alpha T, a, b Reader[T], beta T, c Writer[T], opts ...Option) error {
	const tag = "Gemm"
	wa, err := readWindow(tag, a)
	if err != nil {
		return err
	}
	wb, err := readWindow(tag, b)
	if err != nil {
		return err
	}
	wc, err := prepDst(tag, c)
	if err != nil {
		return err
	}
	if sameStorage(wc.st, wa.st, wc.lay.area(), wa.lay.area()) || sameStorage(wc.st, wb.st, wc.lay.area(), wb.lay.area()) {
		return matrixErrorf(tag, ErrAliasing)
	}
	if err = ValidateMulShape[T](wa, wb); err != nil {
		return matrixErrorf(tag, err)
	}
	if wa.lay.rows != wc.lay.rows || wb.lay.cols != wc.lay.cols {
		return fmt.Errorf("%s(a=%dx%d, b=%dx%d, c=%dx%d): %w", tag,
			wa.lay.rows, wa.lay.cols, wb.lay.rows, wb.lay.cols, wc.lay.rows, wc.lay.cols, ErrDimensionMismatch)
	}

	ga, err := generalOf(wa)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	gb, err := generalOf(wb)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	gc, err := generalOf(wc)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	if err = blas.Gemm(kernelsFor[T](tag, gatherOptions(opts...)), alpha, ga, gb, beta, gc); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// Mul returns the new matrix a*b.
func Mul[T scalar.Number](a, b Reader[T], opts ...Option) (*Mat[T], error) {
	wa, err := readWindow("Mul", a)
	if err != nil {
		return nil, err
	}
	wb, err := readWindow("Mul", b)
	if err != nil {
		return nil, err
	}
	out, err := Zeros[T](wa.lay.rows, wb.lay.cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = Gemm[T](scalar.One[T](), wa, wb, scalar.Zero[T](), out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// MulVec returns the new column vector a*x.
func MulVec[T scalar.Number](a Reader[T], x VecReader[T], opts ...Option) (*ColVec[T], error) {
	wa, err := readWindow("MulVec", a)
	if err != nil {
		return nil, err
	}
	out, err := ZerosCol[T](wa.lay.rows, opts...)
	if err != nil {
		return nil, err
	}
	if err = Gemv[T](scalar.One[T](), wa, x, scalar.Zero[T](), out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// VecMul returns the new row vector xᵀ*a, computed as aᵀ*x.
func VecMul[T scalar.Number](x VecReader[T], a Reader[T], opts ...Option) (*RowVec[T], error) {
	wa, err := readWindow("VecMul", a)
	if err != nil {
		return nil, err
	}
	out, err := ZerosRow[T](wa.lay.cols, opts...)
	if err != nil {
		return nil, err
	}
	at := operand[T]{st: wa.st, lay: wa.lay.t(), id: wa.id}
	if err = Gemv[T](scalar.One[T](), at, x, scalar.Zero[T](), out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// readWindow validates a read-only matrix operand and its borrow.
func readWindow[T any](tag string, r Reader[T]) (operand[T], error) {
	w, err := windowOf(r)
	if err != nil {
		return operand[T]{}, matrixErrorf(tag, err)
	}
	if err = w.st.access(w.id, w.lay.area()); err != nil {
		return operand[T]{}, matrixErrorf(tag, err)
	}

	return w, nil
}
