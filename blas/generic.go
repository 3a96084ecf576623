// SPDX-License-Identifier: MIT

package blas

import "github.com/katalvlaran/linalg/scalar"

// Generic returns the pure-Go fallback table for T. It honours exactly the
// contract of the native kernels: naive triple loop for Gemm, sequential
// accumulation for Dot/Dotc, and beta == 0 overwrites the output.
func Generic[T scalar.Number]() Kernels[T] { return generic[T]{} }

type generic[T scalar.Number] struct{}

func (generic[T]) Name() string { return "generic/" + scalar.KindOf[T]().String() }

func (generic[T]) Axpy(n Int, alpha T, x []T, incX Int, y []T, incY Int) {
	ix, iy := 0, 0
	for i := 0; i < int(n); i++ {
		y[iy] += alpha * x[ix]
		ix += int(incX)
		iy += int(incY)
	}
}

func (generic[T]) Dot(n Int, x []T, incX Int, y []T, incY Int) T {
	var sum T
	ix, iy := 0, 0
	for i := 0; i < int(n); i++ {
		sum += x[ix] * y[iy]
		ix += int(incX)
		iy += int(incY)
	}

	return sum
}

func (generic[T]) Dotc(n Int, x []T, incX Int, y []T, incY Int) T {
	var sum T
	ix, iy := 0, 0
	for i := 0; i < int(n); i++ {
		sum += scalar.Conj(x[ix]) * y[iy]
		ix += int(incX)
		iy += int(incY)
	}

	return sum
}

func (generic[T]) Scal(n Int, alpha T, x []T, incX Int) {
	ix := 0
	for i := 0; i < int(n); i++ {
		x[ix] *= alpha
		ix += int(incX)
	}
}

func (generic[T]) Copy(n Int, x []T, incX Int, y []T, incY Int) {
	ix, iy := 0, 0
	for i := 0; i < int(n); i++ {
		y[iy] = x[ix]
		ix += int(incX)
		iy += int(incY)
	}
}

func (generic[T]) Gemv(tA Transpose, m, n Int, alpha T, a []T, lda Int, x []T, incX Int, beta T, y []T, incY Int) {
	var zero T
	rows, cols := int(m), int(n)
	if tA == Yes {
		rows, cols = cols, rows
	}
	for i := 0; i < rows; i++ {
		var sum T
		for j := 0; j < cols; j++ {
			// op(A)[i,j] is A[i,j] or A[j,i] in storage.
			var aij T
			if tA == Yes {
				aij = a[j*int(lda)+i]
			} else {
				aij = a[i*int(lda)+j]
			}
			sum += aij * x[j*int(incX)]
		}
		iy := i * int(incY)
		if beta == zero {
			y[iy] = alpha * sum
		} else {
			y[iy] = alpha*sum + beta*y[iy]
		}
	}
}

func (generic[T]) Gemm(tA, tB Transpose, m, n, k Int, alpha T, a []T, lda Int, b []T, ldb Int, beta T, c []T, ldc Int) {
	var zero T
	var i, j, l int
	for i = 0; i < int(m); i++ {
		for j = 0; j < int(n); j++ {
			var sum T
			for l = 0; l < int(k); l++ {
				var ail, blj T
				if tA == Yes {
					ail = a[l*int(lda)+i]
				} else {
					ail = a[i*int(lda)+l]
				}
				if tB == Yes {
					blj = b[j*int(ldb)+l]
				} else {
					blj = b[l*int(ldb)+j]
				}
				sum += ail * blj
			}
			ic := i*int(ldc) + j
			if beta == zero {
				c[ic] = alpha * sum
			} else {
				c[ic] = alpha*sum + beta*c[ic]
			}
		}
	}
}
