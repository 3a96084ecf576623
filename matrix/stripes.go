// SPDX-License-Identifier: MIT

package matrix

import "errors"

// hbands cuts l into row bands of size rows; the last band may be shorter.
func hbands(l layout, size int) []layout {
	n := (l.rows + size - 1) / size
	out := make([]layout, n)
	for k := range out {
		r0 := k * size
		out[k] = l.sub(r0, 0, min(r0+size, l.rows), l.cols)
	}

	return out
}

// vbands cuts l into column bands of size columns; the last may be narrower.
func vbands(l layout, size int) []layout {
	n := (l.cols + size - 1) / size
	out := make([]layout, n)
	for k := range out {
		c0 := k * size
		out[k] = l.sub(0, c0, l.rows, min(c0+size, l.cols))
	}

	return out
}

// LinesMut iterates exclusive rows or columns under one borrow.
type LinesMut[T any] struct {
	*Iter[MutVec[T]]
	table *borrowTable
	id    borrowID
}

// Release returns the borrow to the source. Yielded vectors become unusable.
// Errors: ErrBorrowed while a sub-slice of a yielded vector is still live.
func (l *LinesMut[T]) Release() error {
	return l.table.release(l.id)
}

// StripesMut iterates exclusive bands registered up front.
type StripesMut[T any] struct {
	*Iter[MutView[T]]
	table *borrowTable
	views []MutView[T]
}

// Release returns every band that is still registered. Bands already released
// by the caller are skipped.
// Errors: ErrBorrowed when a band still has live sub-views; the remaining
// bands are released regardless.
func (s *StripesMut[T]) Release() error {
	var errs []error
	for _, v := range s.views {
		if err := s.table.release(v.id); err != nil && !errors.Is(err, ErrReleased) {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
