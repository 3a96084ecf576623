// SPDX-License-Identifier: MIT

package blas

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// Descriptor-level entry points. Each validates extents, handles empty
// operands (native kernels reject zero leading dimensions) and then calls
// exactly one kernel of the given table.

// Axpy computes y += alpha*x.
func Axpy[T scalar.Number](k Kernels[T], alpha T, x, y Vector[T]) error {
	if x.N != y.N {
		return fmt.Errorf("blas: Axpy(%d, %d): %w", x.N, y.N, ErrShape)
	}
	if x.N == 0 {
		return nil
	}
	k.Axpy(x.N, alpha, x.Data, x.Inc, y.Data, y.Inc)

	return nil
}

// Dot returns Σ x[i]*y[i].
func Dot[T scalar.Number](k Kernels[T], x, y Vector[T]) (T, error) {
	var zero T
	if x.N != y.N {
		return zero, fmt.Errorf("blas: Dot(%d, %d): %w", x.N, y.N, ErrShape)
	}
	if x.N == 0 {
		return zero, nil
	}

	return k.Dot(x.N, x.Data, x.Inc, y.Data, y.Inc), nil
}

// Dotc returns Σ conj(x[i])*y[i].
func Dotc[T scalar.Number](k Kernels[T], x, y Vector[T]) (T, error) {
	var zero T
	if x.N != y.N {
		return zero, fmt.Errorf("blas: Dotc(%d, %d): %w", x.N, y.N, ErrShape)
	}
	if x.N == 0 {
		return zero, nil
	}

	return k.Dotc(x.N, x.Data, x.Inc, y.Data, y.Inc), nil
}

// Scal computes x *= alpha.
func Scal[T scalar.Number](k Kernels[T], alpha T, x Vector[T]) {
	if x.N == 0 {
		return
	}
	k.Scal(x.N, alpha, x.Data, x.Inc)
}

// Copy computes y = x.
func Copy[T scalar.Number](k Kernels[T], x, y Vector[T]) error {
	if x.N != y.N {
		return fmt.Errorf("blas: Copy(%d, %d): %w", x.N, y.N, ErrShape)
	}
	if x.N == 0 {
		return nil
	}
	k.Copy(x.N, x.Data, x.Inc, y.Data, y.Inc)

	return nil
}

// Gemv computes y = alpha*op(A)*x + beta*y.
func Gemv[T scalar.Number](k Kernels[T], alpha T, a General[T], x Vector[T], beta T, y Vector[T]) error {
	m, n := a.OpDims()
	if x.N != n || y.N != m {
		return fmt.Errorf("blas: Gemv(op(A)=%dx%d, x=%d, y=%d): %w", m, n, x.N, y.N, ErrShape)
	}
	if m == 0 {
		return nil
	}
	if n == 0 {
		scaleVector(k, beta, y)

		return nil
	}
	k.Gemv(a.Trans, a.Rows, a.Cols, alpha, a.Data, a.Stride, x.Data, x.Inc, beta, y.Data, y.Inc)

	return nil
}

// Gemm computes C = alpha*op(A)*op(B) + beta*C.
//
// A transposed output is rewritten with Cᵀ = op(B)ᵀ·op(A)ᵀ, so the kernel
// always writes a non-transposed rectangle.
func Gemm[T scalar.Number](k Kernels[T], alpha T, a, b General[T], beta T, c General[T]) error {
	if c.Trans == Yes {
		return Gemm(k, alpha, b.T(), a.T(), beta, c.T())
	}
	m, n := c.Rows, c.Cols
	am, ak := a.OpDims()
	bk, bn := b.OpDims()
	if am != m || bn != n || ak != bk {
		return fmt.Errorf("blas: Gemm(op(A)=%dx%d, op(B)=%dx%d, C=%dx%d): %w", am, ak, bk, bn, m, n, ErrShape)
	}
	if m == 0 || n == 0 {
		return nil
	}
	if ak == 0 {
		for i := 0; i < int(m); i++ {
			scaleVector(k, beta, Vector[T]{N: n, Inc: 1, Data: c.Data[i*int(c.Stride):]})
		}

		return nil
	}
	k.Gemm(a.Trans, b.Trans, m, n, ak, alpha, a.Data, a.Stride, b.Data, b.Stride, beta, c.Data, c.Stride)

	return nil
}

// scaleVector applies y = beta*y, overwriting with zeros when beta == 0 so
// NaNs in y do not survive (the BLAS convention).
func scaleVector[T scalar.Number](k Kernels[T], beta T, y Vector[T]) {
	var zero T
	if beta != zero {
		Scal(k, beta, y)

		return
	}
	iy := 0
	for i := 0; i < int(y.N); i++ {
		y.Data[iy] = zero
		iy += int(y.Inc)
	}
}
