// Package matrix provides dense, strided matrices and vectors over any
// numeric element type, with zero-copy views and kernel-backed operators.
//
// The matrix package provides:
//
//   - Mat, an owned row-major matrix, and View / MutView windows over it
//     (offset, shape, stride), each of which may be transposed in O(1).
//   - Slicing with runtime exclusivity: mutable sub-views are registered in
//     the owner's borrow table, so overlapping mutable windows are reported
//     as ErrAliasing instead of silently racing on the same cells. Disjoint
//     splits (SplitAtRow, SplitAtCol, HStripesMut, VStripesMut) hand out
//     several exclusive windows at once.
//   - Exact-size, double-ended iteration over rows, columns, diagonals and
//     stripes (Next, NextBack, Len, Skip, and range-over-func adapters).
//   - Element-wise, reduction and product operators that translate every
//     window into BLAS descriptors (leading dimension, increment, transpose
//     flag) and run on gonum's kernels for float32, float64, complex64 and
//     complex128, or on generic loops for every other element kind.
//
// Views never outlive correctness: reading or writing through a window whose
// borrow was released, or whose cells are lent to a live sub-view, returns
// an error rather than touching the data.
//
// See the examples in this package and in examples/ for usage patterns.
package matrix
