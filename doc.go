// Package linalg is a dense linear-algebra layer for Go: owned matrices and
// vectors, strided zero-copy views, safe aliasing, and kernel-backed
// operators over any numeric element type.
//
// What is linalg?
//
//	A generic library that brings together:
//		• Owned storage: Mat, ColVec, RowVec over float, complex, integer
//		  and named numeric element types
//		• Views: strided windows and O(1) transposition
//		• Safe aliasing: a runtime borrow table per owner, disjoint splits
//		  and stripes for parallel writers
//		• Iteration: exact-size, double-ended row / column / diagonal iterators
//		• Operators: element-wise, reductions, Gemv / Gemm
//		• Kernels: gonum BLAS for the native float and complex kinds, generic
//		  loops for everything else
//
// Under the hood, everything is organized under three subpackages:
//
//	scalar/ - element constraints, kinds and scalar helpers
//	blas/   - kernel descriptors, accelerated and generic kernel tables
//	matrix/ - matrices, vectors, views, iterators and operators
//
// Quick example:
//
//	a, _ := matrix.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	c, _ := matrix.Mul(a, a.T()) // a·aᵀ without copying a
//
//	go get github.com/katalvlaran/linalg
package linalg
