// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, allocating entry points for common tasks; each facade
//     clones its first operand and delegates to the in-place operator.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or kernel choice of the operators.
//   - Validation is performed in the operators; facades only compose or forward.
//
// AI-Hints:
//   - Prefer the in-place operators (AddAssign, Scale, Gemm) in hot loops.
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

import "github.com/katalvlaran/linalg/scalar"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized rows×cols matrix.
// It is a thin alias of Zeros with an intention-revealing name.
func NewZeros[T any](rows, cols int, opts ...Option) (*Mat[T], error) {
	return Zeros[T](rows, cols, opts...)
}

// NewIdentity returns I_n. Alias of Identity.
func NewIdentity[T scalar.Number](n int, opts ...Option) (*Mat[T], error) {
	return Identity[T](n, opts...)
}

// CloneMatrix materialises any window into a new owned matrix.
func CloneMatrix[T any](m Reader[T]) (*Mat[T], error) {
	w, err := windowOf(m)
	if err != nil {
		return nil, matrixErrorf(ctxClone, err)
	}

	return w.Clone()
}

// Transpose returns aᵀ as a new owned matrix (T() is the O(1) alternative).
func Transpose[T any](a Reader[T]) (*Mat[T], error) {
	w, err := windowOf(a)
	if err != nil {
		return nil, matrixErrorf("Transpose", err)
	}
	w.lay = w.lay.t()

	return w.Clone()
}

// ---------- Allocating arithmetic ----------

// Sum returns a + b.
func Sum[T scalar.Number](a, b Reader[T], opts ...Option) (*Mat[T], error) {
	return cloneThen(a, func(out *Mat[T]) error { return AddAssign(out, b, opts...) })
}

// Diff returns a - b.
func Diff[T scalar.Number](a, b Reader[T], opts ...Option) (*Mat[T], error) {
	return cloneThen(a, func(out *Mat[T]) error { return SubAssign(out, b, opts...) })
}

// HadamardProd returns the element-wise product a ∘ b.
func HadamardProd[T scalar.Number](a, b Reader[T], opts ...Option) (*Mat[T], error) {
	return cloneThen(a, func(out *Mat[T]) error { return MulAssign(out, b, opts...) })
}

// Scaled returns alpha*a.
func Scaled[T scalar.Number](alpha T, a Reader[T], opts ...Option) (*Mat[T], error) {
	return cloneThen(a, func(out *Mat[T]) error { return Scale(out, alpha, opts...) })
}

func cloneThen[T any](a Reader[T], op func(*Mat[T]) error) (*Mat[T], error) {
	out, err := CloneMatrix(a)
	if err != nil {
		return nil, err
	}
	if err = op(out); err != nil {
		return nil, err
	}

	return out, nil
}
