// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep operators minimal by delegating shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and O(1).
//
// AI-Hints:
//  - Use ValidateSameShape for every element-wise operator.
//  - Use ValidateMulShape before Gemm-like products.
//  - Use ValidateVecLen for any dot/axpy-like vector operation.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape ensures a and b have equal logical dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
func ValidateSameShape[T any](a, b Reader[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulShape ensures a.Cols() == b.Rows() (inner dimensions agree).
func ValidateMulShape[T any](a, b Reader[T]) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures x and y have the same length.
func ValidateVecLen[T any](x, y VecReader[T]) error {
	if x.Len() != y.Len() {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
