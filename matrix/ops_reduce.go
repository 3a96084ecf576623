// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/linalg/blas"
	"github.com/katalvlaran/linalg/scalar"
)

// Dot returns Σ x[i]*y[i].
// Errors: ErrNilMatrix, borrow violations, ErrDimensionMismatch.
func Dot[T scalar.Number](x, y VecReader[T], opts ...Option) (T, error) {
	return dotOf("Dot", false, x, y, opts)
}

// Dotc returns Σ conj(x[i])*y[i]; for real T it equals Dot.
func Dotc[T scalar.Number](x, y VecReader[T], opts ...Option) (T, error) {
	return dotOf("Dotc", true, x, y, opts)
}

func dotOf[T scalar.Number](tag string, conj bool, x, y VecReader[T], opts []Option) (T, error) {
	var zero T
	a, b, err := readPair(tag, x, y)
	if err != nil {
		return zero, err
	}
	va, vb, err := vectorPair(a, b)
	if err != nil {
		return zero, matrixErrorf(tag, err)
	}
	k := kernelsFor[T](tag, gatherOptions(opts...))
	var r T
	if conj {
		r, err = blas.Dotc(k, va, vb)
	} else {
		r, err = blas.Dot(k, va, vb)
	}
	if err != nil {
		return zero, matrixErrorf(tag, err)
	}

	return r, nil
}

// readPair validates two read-only vector operands of equal length.
func readPair[T any](tag string, x, y VecReader[T]) (a, b lineOperand[T], err error) {
	if a, err = lineOfReader(x); err != nil {
		return a, b, matrixErrorf(tag, err)
	}
	if b, err = lineOfReader(y); err != nil {
		return a, b, matrixErrorf(tag, err)
	}
	if err = a.st.access(a.id, a.ln.area()); err != nil {
		return a, b, matrixErrorf(tag, err)
	}
	if err = b.st.access(b.id, b.ln.area()); err != nil {
		return a, b, matrixErrorf(tag, err)
	}
	if err = ValidateVecLen[T](a, b); err != nil {
		return a, b, matrixErrorf(tag, err)
	}

	return a, b, nil
}

// Norm2 returns the squared Euclidean norm Σ |x[i]|² (squared modulus for
// complex elements).
// MAIN DESCRIPTION:
//   - Accelerated kinds use the conjugated dot of x with itself; its real part
//     is the sum of squared magnitudes.
//   - Every other kind (and WithGeneric) accumulates scalar.Abs2 in float64,
//     so integer inputs cannot overflow T.
func Norm2[T scalar.Number](x VecReader[T], opts ...Option) (float64, error) {
	const tag = "Norm2"
	a, err := lineOfReader(x)
	if err != nil {
		return 0, matrixErrorf(tag, err)
	}
	if err = a.st.access(a.id, a.ln.area()); err != nil {
		return 0, matrixErrorf(tag, err)
	}

	return norm2Line(tag, a, gatherOptions(opts...))
}

func norm2Line[T scalar.Number](tag string, a lineOperand[T], o Options) (float64, error) {
	if o.generic || !blas.Accelerated[T]() {
		var sum float64
		for i := 0; i < a.ln.n; i++ {
			sum += scalar.Abs2(a.st.data[a.ln.at(i)])
		}

		return sum, nil
	}
	va, err := vectorOf(a)
	if err != nil {
		return 0, matrixErrorf(tag, err)
	}
	r, err := blas.Dotc(kernelsFor[T](tag, o), va, va)
	if err != nil {
		return 0, matrixErrorf(tag, err)
	}

	return scalar.RealPart(r), nil
}

// Norm2Mat returns Σ |m[i,j]|² (the squared Frobenius norm).
func Norm2Mat[T scalar.Number](m Reader[T], opts ...Option) (float64, error) {
	const tag = "Norm2Mat"
	a, err := windowOf(m)
	if err != nil {
		return 0, matrixErrorf(tag, err)
	}
	if err = a.st.access(a.id, a.lay.area()); err != nil {
		return 0, matrixErrorf(tag, err)
	}
	o := gatherOptions(opts...)
	var sum float64
	for _, ln := range lineRows(a) {
		s, err := norm2Line(tag, ln, o)
		if err != nil {
			return 0, err
		}
		sum += s
	}

	return sum, nil
}

// SumRows adds up the logical rows of m: out[j] = Σ_i m[i,j].
func SumRows[T scalar.Number](m Reader[T], opts ...Option) (*RowVec[T], error) {
	const tag = "SumRows"
	a, err := windowOf(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := ZerosRow[T](a.lay.cols, opts...)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for i := 0; i < a.lay.rows; i++ {
		if err = AddAssignVec[T](out, Vec[T]{a.lineAt(a.lay.row(i))}, opts...); err != nil {
			return nil, matrixErrorf(tag, err)
		}
	}

	return out, nil
}

// SumCols adds up the logical columns of m: out[i] = Σ_j m[i,j].
func SumCols[T scalar.Number](m Reader[T], opts ...Option) (*ColVec[T], error) {
	const tag = "SumCols"
	a, err := windowOf(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := ZerosCol[T](a.lay.rows, opts...)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for j := 0; j < a.lay.cols; j++ {
		if err = AddAssignVec[T](out, Vec[T]{a.lineAt(a.lay.col(j))}, opts...); err != nil {
			return nil, matrixErrorf(tag, err)
		}
	}

	return out, nil
}
