// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/blas"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with an operation tag
// (matrixErrorf) or coordinates (viewErrorf); callers still use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape/range -> released handle -> aliasing -> dimension mismatch -> backend overflow.

var (
	// ErrBadShape is returned when a requested shape or block size is invalid
	// (negative extents, non-positive stripe size).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates an index, slice rectangle or vector range outside
	// the addressable region. Recoverable: callers routinely try sub-rectangles.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNoDiagonal indicates a diagonal offset whose diagonal would be empty or
	// start outside the matrix. It wraps ErrOutOfRange.
	ErrNoDiagonal = fmt.Errorf("matrix: no such diagonal: %w", ErrOutOfRange)

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. AddAssign
	// with different shapes, or Gemm where op(A).Cols != op(B).Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAliasing indicates that an access or a new mutable view would overlap a
	// live mutable view that does not own it, or that operands of one operation
	// overlap in a way the kernel cannot handle.
	ErrAliasing = errors.New("matrix: aliasing violation")

	// ErrBorrowed indicates Release on a view that still has live sub-views.
	ErrBorrowed = errors.New("matrix: view still has live sub-views")

	// ErrReleased indicates use of a mutable view after Release.
	ErrReleased = errors.New("matrix: view has been released")

	// ErrTooLarge indicates an allocation that overflows int or exceeds the
	// physical memory of the host.
	ErrTooLarge = errors.New("matrix: allocation too large")

	// ErrDivideByZero indicates an integer division by a zero element or scalar.
	// Floating-point division follows IEEE-754 and never reports it.
	ErrDivideByZero = errors.New("matrix: integer division by zero")

	// ErrNilMatrix indicates that a nil operand was passed.
	ErrNilMatrix = errors.New("matrix: nil operand")

	// ErrOverflow re-exports blas.ErrOverflow: a count or stride that does not
	// fit the kernel index width.
	ErrOverflow = blas.ErrOverflow
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// viewErrorf wraps err with a method context and the offending coordinates.
func viewErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, i, j, err)
}
