// SPDX-License-Identifier: MIT

// Package blas is the backend dispatch layer: it describes strided operands
// in the argument conventions of level-1/2/3 BLAS routines (row-major, leading
// dimension, transpose flag, increment) and routes them to a kernel table
// chosen per element kind.
//
// Purpose:
//   - Transpose flag with cancelling composition (Not).
//   - Checked conversion of counts and strides to the kernel index width (Int).
//   - Vector / General descriptors that validate their own buffer extents.
//   - Kernels[T]: accelerated (gonum, or any Implementation installed with Use)
//     for float32/float64/complex64/complex128, Generic[T] for everything else.
//
// Conventions:
//   - All matrices are row-major. General.Rows/Cols are the PHYSICAL extents of
//     the stored rectangle; Trans tells the kernel to read it as its transpose.
//   - Indices are offsets into Go slices; there is no 1-based indexing.
package blas

import (
	"errors"
	"fmt"
	"math"

	gblas "gonum.org/v1/gonum/blas"
)

var (
	// ErrOverflow reports a count or stride that does not fit the kernel index width.
	ErrOverflow = errors.New("blas: integer overflow converting to kernel index")

	// ErrShape reports operand extents that disagree (m, n, k, vector lengths).
	ErrShape = errors.New("blas: operand shape mismatch")

	// ErrShortBuffer reports a descriptor whose Data cannot hold the described extent.
	ErrShortBuffer = errors.New("blas: buffer too short for descriptor")

	// ErrIncrement reports a non-positive vector increment or a leading
	// dimension smaller than the row length.
	ErrIncrement = errors.New("blas: bad increment or leading dimension")
)

// Transpose tells a kernel whether to read a stored matrix as-is or transposed.
type Transpose byte

const (
	// No reads the operand as stored.
	No Transpose = 'N'
	// Yes reads the operand transposed.
	Yes Transpose = 'T'
)

// Not flips the flag; two wraps cancel.
func (t Transpose) Not() Transpose {
	if t == Yes {
		return No
	}

	return Yes
}

// String returns "N" or "T".
func (t Transpose) String() string {
	if t == Yes {
		return "T"
	}

	return "N"
}

// Of maps a boolean transposed-state to the flag.
func Of(transposed bool) Transpose {
	if transposed {
		return Yes
	}

	return No
}

func (t Transpose) gonum() gblas.Transpose {
	if t == Yes {
		return gblas.Trans
	}

	return gblas.NoTrans
}

// Int is the kernel index width (CBLAS blasint, LP64).
type Int int32

// MaxInt is the largest count a kernel accepts.
const MaxInt = math.MaxInt32

// ToInt converts n to the kernel index width, failing instead of truncating.
func ToInt(n int) (Int, error) {
	if n < 0 || n > MaxInt {
		return 0, fmt.Errorf("blas: ToInt(%d): %w", n, ErrOverflow)
	}

	return Int(n), nil
}

// toInts converts several values at once; the first failure wins.
func toInts(vals ...int) ([]Int, error) {
	out := make([]Int, len(vals))
	for i, v := range vals {
		c, err := ToInt(v)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}
