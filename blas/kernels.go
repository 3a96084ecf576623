// SPDX-License-Identifier: MIT

package blas

import (
	"fmt"

	gblas "gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"

	"github.com/katalvlaran/linalg/scalar"
)

// Kernels is the fixed-signature routine table for one element type. The
// argument order mirrors the level-1/2/3 BLAS routines of the same name
// (row-major; lda/ldb/ldc are leading dimensions).
//
// Callers are expected to pass validated extents (see the descriptor-level
// helpers in dispatch.go); implementations may panic on malformed input the
// way native BLAS bindings do.
type Kernels[T any] interface {
	// Name identifies the table in logs.
	Name() string
	// Axpy computes y += alpha*x.
	Axpy(n Int, alpha T, x []T, incX Int, y []T, incY Int)
	// Dot returns Σ x[i]*y[i] (unconjugated).
	Dot(n Int, x []T, incX Int, y []T, incY Int) T
	// Dotc returns Σ conj(x[i])*y[i]; equal to Dot for real types.
	Dotc(n Int, x []T, incX Int, y []T, incY Int) T
	// Scal computes x *= alpha.
	Scal(n Int, alpha T, x []T, incX Int)
	// Copy computes y = x.
	Copy(n Int, x []T, incX Int, y []T, incY Int)
	// Gemv computes y = alpha*op(A)*x + beta*y for a stored m×n matrix A.
	Gemv(tA Transpose, m, n Int, alpha T, a []T, lda Int, x []T, incX Int, beta T, y []T, incY Int)
	// Gemm computes C = alpha*op(A)*op(B) + beta*C with C m×n and inner size k.
	Gemm(tA, tB Transpose, m, n, k Int, alpha T, a []T, lda Int, b []T, ldb Int, beta T, c []T, ldc Int)
}

// Implementation is a native routine set covering all four accelerated kinds.
// gonum.Implementation (pure Go) is the default; a cgo binding such as
// gonum.org/v1/netlib/blas/netlib can be installed with Use.
type Implementation interface {
	gblas.Float32
	gblas.Float64
	gblas.Complex64
	gblas.Complex128
}

// impl is the process-wide native implementation. Like blas64.Use in gonum,
// swapping it is not synchronised with running kernels.
var impl Implementation = gonum.Implementation{}

// Use installs a native implementation for subsequent For calls.
// A nil impl restores the pure-Go gonum implementation.
func Use(i Implementation) {
	if i == nil {
		i = gonum.Implementation{}
	}
	impl = i
}

// Current returns the installed native implementation.
func Current() Implementation { return impl }

// For returns the kernel table for T: the installed native implementation for
// float32, float64, complex64 and complex128, Generic[T] for anything else.
func For[T scalar.Number]() Kernels[T] {
	var z T
	switch any(z).(type) {
	case float32:
		return any(float32Kernels{impl}).(Kernels[T])
	case float64:
		return any(float64Kernels{impl}).(Kernels[T])
	case complex64:
		return any(complex64Kernels{impl}).(Kernels[T])
	case complex128:
		return any(complex128Kernels{impl}).(Kernels[T])
	}

	return Generic[T]()
}

// Accelerated reports whether For[T] resolves to the native implementation.
func Accelerated[T scalar.Number]() bool {
	return scalar.KindOf[T]() != scalar.KindOther
}

func nativeName(kind scalar.Kind) string {
	return fmt.Sprintf("%T/%s", impl, kind)
}

// ---------- float32 ----------

type float32Kernels struct{ impl gblas.Float32 }

func (k float32Kernels) Name() string { return nativeName(scalar.KindFloat32) }

func (k float32Kernels) Axpy(n Int, alpha float32, x []float32, incX Int, y []float32, incY Int) {
	k.impl.Saxpy(int(n), alpha, x, int(incX), y, int(incY))
}

func (k float32Kernels) Dot(n Int, x []float32, incX Int, y []float32, incY Int) float32 {
	return k.impl.Sdot(int(n), x, int(incX), y, int(incY))
}

func (k float32Kernels) Dotc(n Int, x []float32, incX Int, y []float32, incY Int) float32 {
	return k.impl.Sdot(int(n), x, int(incX), y, int(incY))
}

func (k float32Kernels) Scal(n Int, alpha float32, x []float32, incX Int) {
	k.impl.Sscal(int(n), alpha, x, int(incX))
}

func (k float32Kernels) Copy(n Int, x []float32, incX Int, y []float32, incY Int) {
	k.impl.Scopy(int(n), x, int(incX), y, int(incY))
}

func (k float32Kernels) Gemv(tA Transpose, m, n Int, alpha float32, a []float32, lda Int, x []float32, incX Int, beta float32, y []float32, incY Int) {
	k.impl.Sgemv(tA.gonum(), int(m), int(n), alpha, a, int(lda), x, int(incX), beta, y, int(incY))
}

func (k float32Kernels) Gemm(tA, tB Transpose, m, n, kk Int, alpha float32, a []float32, lda Int, b []float32, ldb Int, beta float32, c []float32, ldc Int) {
	k.impl.Sgemm(tA.gonum(), tB.gonum(), int(m), int(n), int(kk), alpha, a, int(lda), b, int(ldb), beta, c, int(ldc))
}

// ---------- float64 ----------

type float64Kernels struct{ impl gblas.Float64 }

func (k float64Kernels) Name() string { return nativeName(scalar.KindFloat64) }

func (k float64Kernels) Axpy(n Int, alpha float64, x []float64, incX Int, y []float64, incY Int) {
	k.impl.Daxpy(int(n), alpha, x, int(incX), y, int(incY))
}

func (k float64Kernels) Dot(n Int, x []float64, incX Int, y []float64, incY Int) float64 {
	return k.impl.Ddot(int(n), x, int(incX), y, int(incY))
}

func (k float64Kernels) Dotc(n Int, x []float64, incX Int, y []float64, incY Int) float64 {
	return k.impl.Ddot(int(n), x, int(incX), y, int(incY))
}

func (k float64Kernels) Scal(n Int, alpha float64, x []float64, incX Int) {
	k.impl.Dscal(int(n), alpha, x, int(incX))
}

func (k float64Kernels) Copy(n Int, x []float64, incX Int, y []float64, incY Int) {
	k.impl.Dcopy(int(n), x, int(incX), y, int(incY))
}

func (k float64Kernels) Gemv(tA Transpose, m, n Int, alpha float64, a []float64, lda Int, x []float64, incX Int, beta float64, y []float64, incY Int) {
	k.impl.Dgemv(tA.gonum(), int(m), int(n), alpha, a, int(lda), x, int(incX), beta, y, int(incY))
}

func (k float64Kernels) Gemm(tA, tB Transpose, m, n, kk Int, alpha float64, a []float64, lda Int, b []float64, ldb Int, beta float64, c []float64, ldc Int) {
	k.impl.Dgemm(tA.gonum(), tB.gonum(), int(m), int(n), int(kk), alpha, a, int(lda), b, int(ldb), beta, c, int(ldc))
}

// ---------- complex64 ----------

type complex64Kernels struct{ impl gblas.Complex64 }

func (k complex64Kernels) Name() string { return nativeName(scalar.KindComplex64) }

func (k complex64Kernels) Axpy(n Int, alpha complex64, x []complex64, incX Int, y []complex64, incY Int) {
	k.impl.Caxpy(int(n), alpha, x, int(incX), y, int(incY))
}

func (k complex64Kernels) Dot(n Int, x []complex64, incX Int, y []complex64, incY Int) complex64 {
	return k.impl.Cdotu(int(n), x, int(incX), y, int(incY))
}

func (k complex64Kernels) Dotc(n Int, x []complex64, incX Int, y []complex64, incY Int) complex64 {
	return k.impl.Cdotc(int(n), x, int(incX), y, int(incY))
}

func (k complex64Kernels) Scal(n Int, alpha complex64, x []complex64, incX Int) {
	k.impl.Cscal(int(n), alpha, x, int(incX))
}

func (k complex64Kernels) Copy(n Int, x []complex64, incX Int, y []complex64, incY Int) {
	k.impl.Ccopy(int(n), x, int(incX), y, int(incY))
}

func (k complex64Kernels) Gemv(tA Transpose, m, n Int, alpha complex64, a []complex64, lda Int, x []complex64, incX Int, beta complex64, y []complex64, incY Int) {
	k.impl.Cgemv(tA.gonum(), int(m), int(n), alpha, a, int(lda), x, int(incX), beta, y, int(incY))
}

func (k complex64Kernels) Gemm(tA, tB Transpose, m, n, kk Int, alpha complex64, a []complex64, lda Int, b []complex64, ldb Int, beta complex64, c []complex64, ldc Int) {
	k.impl.Cgemm(tA.gonum(), tB.gonum(), int(m), int(n), int(kk), alpha, a, int(lda), b, int(ldb), beta, c, int(ldc))
}

// ---------- complex128 ----------

type complex128Kernels struct{ impl gblas.Complex128 }

func (k complex128Kernels) Name() string { return nativeName(scalar.KindComplex128) }

func (k complex128Kernels) Axpy(n Int, alpha complex128, x []complex128, incX Int, y []complex128, incY Int) {
	k.impl.Zaxpy(int(n), alpha, x, int(incX), y, int(incY))
}

func (k complex128Kernels) Dot(n Int, x []complex128, incX Int, y []complex128, incY Int) complex128 {
	return k.impl.Zdotu(int(n), x, int(incX), y, int(incY))
}

func (k complex128Kernels) Dotc(n Int, x []complex128, incX Int, y []complex128, incY Int) complex128 {
	return k.impl.Zdotc(int(n), x, int(incX), y, int(incY))
}

func (k complex128Kernels) Scal(n Int, alpha complex128, x []complex128, incX Int) {
	k.impl.Zscal(int(n), alpha, x, int(incX))
}

func (k complex128Kernels) Copy(n Int, x []complex128, incX Int, y []complex128, incY Int) {
	k.impl.Zcopy(int(n), x, int(incX), y, int(incY))
}

func (k complex128Kernels) Gemv(tA Transpose, m, n Int, alpha complex128, a []complex128, lda Int, x []complex128, incX Int, beta complex128, y []complex128, incY Int) {
	k.impl.Zgemv(tA.gonum(), int(m), int(n), alpha, a, int(lda), x, int(incX), beta, y, int(incY))
}

func (k complex128Kernels) Gemm(tA, tB Transpose, m, n, kk Int, alpha complex128, a []complex128, lda Int, b []complex128, ldb Int, beta complex128, c []complex128, ldc Int) {
	k.impl.Zgemm(tA.gonum(), tB.gonum(), int(m), int(n), int(kk), alpha, a, int(lda), b, int(ldb), beta, c, int(ldc))
}
