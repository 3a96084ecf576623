// SPDX-License-Identifier: MIT

// Package matrix - element-wise operators over any storage variant.
//
// Purpose:
//   - dst ∘= src for every (Mat | View | MutView, either orientation) pair,
//     with a shape check and an overlap check up front.
//   - Axpy/Copy/Scal-shaped operators run on the kernel table (one call per
//     logical row, or one call for a contiguous window); MulAssign,
//     DivAssign and AddScalar have no kernel and loop directly.
//
// Determinism:
//   - Fixed row-major traversal; results independent of the kernel table up
//     to floating-point rounding of the kernels themselves.
//
// Errors (in order of detection):
//   - ErrNilMatrix, ErrReleased / ErrAliasing (borrow table),
//     ErrAliasing (dst and src overlap with different layouts),
//     ErrDimensionMismatch, blas.ErrOverflow.
package matrix

import (
	"github.com/katalvlaran/linalg/blas"
	"github.com/katalvlaran/linalg/scalar"
)

// ---------- Public API ----------

// AddAssign computes dst += src.
func AddAssign[T scalar.Number](dst Writer[T], src Reader[T], opts ...Option) error {
	return axpyInto("AddAssign", dst, scalar.One[T](), src, opts)
}

// SubAssign computes dst -= src.
func SubAssign[T scalar.Number](dst Writer[T], src Reader[T], opts ...Option) error {
	return axpyInto("SubAssign", dst, scalar.Zero[T]()-scalar.One[T](), src, opts)
}

// Axpy computes dst += alpha*src.
func Axpy[T scalar.Number](dst Writer[T], alpha T, src Reader[T], opts ...Option) error {
	return axpyInto("Axpy", dst, alpha, src, opts)
}

// Assign copies src into dst.
func Assign[T scalar.Number](dst Writer[T], src Reader[T], opts ...Option) error {
	const tag = "Assign"
	d, s, err := prepPair(tag, dst, src)
	if err != nil {
		return err
	}
	k := kernelsFor[T](tag, gatherOptions(opts...))
	dl, sl := pairedRows(d, s)
	for i := range dl {
		x, y, err := vectorPair(sl[i], dl[i])
		if err != nil {
			return matrixErrorf(tag, err)
		}
		if err = blas.Copy(k, x, y); err != nil {
			return matrixErrorf(tag, err)
		}
	}

	return nil
}

// Scale computes dst *= alpha.
func Scale[T scalar.Number](dst Writer[T], alpha T, opts ...Option) error {
	const tag = "Scale"
	d, err := prepDst(tag, dst)
	if err != nil {
		return err
	}

	return scaleRows(tag, d, alpha, gatherOptions(opts...))
}

// DivScalar computes dst /= alpha.
// MAIN DESCRIPTION:
//   - Float and complex elements are scaled by the reciprocal 1/alpha on the
//     kernel table (a division by zero yields ±Inf/NaN per IEEE-754).
//   - Integer elements are divided exactly; alpha == 0 is ErrDivideByZero.
func DivScalar[T scalar.Number](dst Writer[T], alpha T, opts ...Option) error {
	const tag = "DivScalar"
	d, err := prepDst(tag, dst)
	if err != nil {
		return err
	}
	if !scalar.IsInteger[T]() {
		return scaleRows(tag, d, scalar.One[T]()/alpha, gatherOptions(opts...))
	}
	if alpha == scalar.Zero[T]() {
		return matrixErrorf(tag, ErrDivideByZero)
	}
	loopFor[T](tag, gatherOptions(opts...))
	mapInto(d, func(v T) T { return v / alpha })

	return nil
}

// AddScalar computes dst += a for every element.
// It has no BLAS kernel and always runs as a loop; opts only carry the logger.
func AddScalar[T scalar.Number](dst Writer[T], a T, opts ...Option) error {
	const tag = "AddScalar"
	d, err := prepDst(tag, dst)
	if err != nil {
		return err
	}
	loopFor[T](tag, gatherOptions(opts...))
	mapInto(d, func(v T) T { return v + a })

	return nil
}

// MulAssign computes the element-wise (Hadamard) product dst *= src.
// Like AddScalar it always runs as a loop.
func MulAssign[T scalar.Number](dst Writer[T], src Reader[T], opts ...Option) error {
	const tag = "MulAssign"
	d, s, err := prepPair(tag, dst, src)
	if err != nil {
		return err
	}
	loopFor[T](tag, gatherOptions(opts...))
	zipInto(d, s, func(a, b T) T { return a * b })

	return nil
}

// DivAssign computes the element-wise quotient dst /= src.
// Integer elements with a zero divisor fail with ErrDivideByZero before any
// element is written.
func DivAssign[T scalar.Number](dst Writer[T], src Reader[T], opts ...Option) error {
	const tag = "DivAssign"
	d, s, err := prepPair(tag, dst, src)
	if err != nil {
		return err
	}
	loopFor[T](tag, gatherOptions(opts...))
	if scalar.IsInteger[T]() {
		zero := scalar.Zero[T]()
		for i := 0; i < s.lay.rows; i++ {
			for j := 0; j < s.lay.cols; j++ {
				if s.st.data[s.lay.at(i, j)] == zero {
					return viewErrorf(tag, i, j, ErrDivideByZero)
				}
			}
		}
	}
	zipInto(d, s, func(a, b T) T { return a / b })

	return nil
}

// ---------- Vector forms ----------

// AddAssignVec computes dst += src.
func AddAssignVec[T scalar.Number](dst VecWriter[T], src VecReader[T], opts ...Option) error {
	return axpyVecInto("AddAssignVec", dst, scalar.One[T](), src, opts)
}

// SubAssignVec computes dst -= src.
func SubAssignVec[T scalar.Number](dst VecWriter[T], src VecReader[T], opts ...Option) error {
	return axpyVecInto("SubAssignVec", dst, scalar.Zero[T]()-scalar.One[T](), src, opts)
}

// AxpyVec computes dst += alpha*src.
func AxpyVec[T scalar.Number](dst VecWriter[T], alpha T, src VecReader[T], opts ...Option) error {
	return axpyVecInto("AxpyVec", dst, alpha, src, opts)
}

// AssignVec copies src into dst.
func AssignVec[T scalar.Number](dst VecWriter[T], src VecReader[T], opts ...Option) error {
	const tag = "AssignVec"
	d, s, err := prepVecPair(tag, dst, src)
	if err != nil {
		return err
	}
	x, y, err := vectorPair(s, d)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	if err = blas.Copy(kernelsFor[T](tag, gatherOptions(opts...)), x, y); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// ScaleVec computes dst *= alpha.
func ScaleVec[T scalar.Number](dst VecWriter[T], alpha T, opts ...Option) error {
	const tag = "ScaleVec"
	d, err := lineOfWriter(dst)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	if err = d.st.access(d.id, d.ln.area()); err != nil {
		return matrixErrorf(tag, err)
	}
	y, err := vectorOf(d)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	blas.Scal(kernelsFor[T](tag, gatherOptions(opts...)), alpha, y)

	return nil
}

// MulAssignVec computes the element-wise product dst *= src.
func MulAssignVec[T scalar.Number](dst VecWriter[T], src VecReader[T], opts ...Option) error {
	const tag = "MulAssignVec"
	d, s, err := prepVecPair(tag, dst, src)
	if err != nil {
		return err
	}
	loopFor[T](tag, gatherOptions(opts...))
	for i := 0; i < d.ln.n; i++ {
		d.st.data[d.ln.at(i)] *= s.st.data[s.ln.at(i)]
	}

	return nil
}

// ---------- internals ----------

// prepDst validates a destination window and its borrow.
func prepDst[T any](tag string, dst Writer[T]) (operand[T], error) {
	d, err := mutWindowOf(dst)
	if err != nil {
		return operand[T]{}, matrixErrorf(tag, err)
	}
	if err = d.st.access(d.id, d.lay.area()); err != nil {
		return operand[T]{}, matrixErrorf(tag, err)
	}

	return d, nil
}

// prepPair validates dst and src for an element-wise operator.
// An exact self-alias (same storage, same layout) is accepted: every element
// is read before it is written by the same index.
func prepPair[T any](tag string, dst Writer[T], src Reader[T]) (d, s operand[T], err error) {
	if d, err = prepDst(tag, dst); err != nil {
		return d, s, err
	}
	if s, err = windowOf(src); err != nil {
		return d, s, matrixErrorf(tag, err)
	}
	if err = s.st.access(s.id, s.lay.area()); err != nil {
		return d, s, matrixErrorf(tag, err)
	}
	if sameStorage(d.st, s.st, d.lay.area(), s.lay.area()) && d.lay != s.lay {
		return d, s, matrixErrorf(tag, ErrAliasing)
	}
	if err = ValidateSameShape[T](d, s); err != nil {
		return d, s, matrixErrorf(tag, err)
	}

	return d, s, nil
}

// prepVecPair is prepPair for vectors.
func prepVecPair[T any](tag string, dst VecWriter[T], src VecReader[T]) (d, s lineOperand[T], err error) {
	if d, err = lineOfWriter(dst); err != nil {
		return d, s, matrixErrorf(tag, err)
	}
	if s, err = lineOfReader(src); err != nil {
		return d, s, matrixErrorf(tag, err)
	}
	if err = d.st.access(d.id, d.ln.area()); err != nil {
		return d, s, matrixErrorf(tag, err)
	}
	if err = s.st.access(s.id, s.ln.area()); err != nil {
		return d, s, matrixErrorf(tag, err)
	}
	if sameStorage(d.st, s.st, d.ln.area(), s.ln.area()) && d.ln != s.ln {
		return d, s, matrixErrorf(tag, ErrAliasing)
	}
	if err = ValidateVecLen[T](d, s); err != nil {
		return d, s, matrixErrorf(tag, err)
	}

	return d, s, nil
}

func vectorPair[T any](x, y lineOperand[T]) (blas.Vector[T], blas.Vector[T], error) {
	vx, err := vectorOf(x)
	if err != nil {
		return vx, blas.Vector[T]{}, err
	}
	vy, err := vectorOf(y)

	return vx, vy, err
}

func axpyInto[T scalar.Number](tag string, dst Writer[T], alpha T, src Reader[T], opts []Option) error {
	d, s, err := prepPair(tag, dst, src)
	if err != nil {
		return err
	}
	k := kernelsFor[T](tag, gatherOptions(opts...))
	dl, sl := pairedRows(d, s)
	for i := range dl {
		x, y, err := vectorPair(sl[i], dl[i])
		if err != nil {
			return matrixErrorf(tag, err)
		}
		if err = blas.Axpy(k, alpha, x, y); err != nil {
			return matrixErrorf(tag, err)
		}
	}

	return nil
}

func axpyVecInto[T scalar.Number](tag string, dst VecWriter[T], alpha T, src VecReader[T], opts []Option) error {
	d, s, err := prepVecPair(tag, dst, src)
	if err != nil {
		return err
	}
	x, y, err := vectorPair(s, d)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	if err = blas.Axpy(kernelsFor[T](tag, gatherOptions(opts...)), alpha, x, y); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

func scaleRows[T scalar.Number](tag string, d operand[T], alpha T, o Options) error {
	k := kernelsFor[T](tag, o)
	for _, ln := range lineRows(d) {
		y, err := vectorOf(ln)
		if err != nil {
			return matrixErrorf(tag, err)
		}
		blas.Scal(k, alpha, y)
	}

	return nil
}

// mapInto applies f to every element of d in row-major order.
func mapInto[T any](d operand[T], f func(T) T) {
	for i := 0; i < d.lay.rows; i++ {
		for j := 0; j < d.lay.cols; j++ {
			p := d.lay.at(i, j)
			d.st.data[p] = f(d.st.data[p])
		}
	}
}

// zipInto sets d[i,j] = f(d[i,j], s[i,j]) in row-major order.
func zipInto[T any](d, s operand[T], f func(a, b T) T) {
	for i := 0; i < d.lay.rows; i++ {
		for j := 0; j < d.lay.cols; j++ {
			p := d.lay.at(i, j)
			d.st.data[p] = f(d.st.data[p], s.st.data[s.lay.at(i, j)])
		}
	}
}
