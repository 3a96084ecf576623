// SPDX-License-Identifier: MIT

package matrix

import "iter"

// Iter is an exact-size, double-ended iterator over positions [front, back).
//
// Every line, stripe and element iterator of this package is an Iter: the
// remaining count is always Len() == back - front, Next consumes from the
// front, NextBack from the back, and the two ends never cross.
// An Iter is single-pass; ask the source for a new one to restart.
type Iter[V any] struct {
	front, back int
	at          func(int) V
}

func newIter[V any](n int, at func(int) V) *Iter[V] {
	return &Iter[V]{back: n, at: at}
}

// Next returns the front item, or false once exhausted.
func (it *Iter[V]) Next() (V, bool) {
	if it.front >= it.back {
		var zero V
		return zero, false
	}
	v := it.at(it.front)
	it.front++

	return v, true
}

// NextBack returns the back item, or false once exhausted.
func (it *Iter[V]) NextBack() (V, bool) {
	if it.front >= it.back {
		var zero V
		return zero, false
	}
	it.back--

	return it.at(it.back), true
}

// Len is the exact number of remaining items.
func (it *Iter[V]) Len() int { return it.back - it.front }

// Skip drops up to n items from the front and returns the iterator.
func (it *Iter[V]) Skip(n int) *Iter[V] {
	if n > 0 {
		it.front = min(it.front+n, it.back)
	}

	return it
}

// All yields (position, item) pairs from the front, consuming the iterator.
// Breaking out of the loop leaves the remaining items in place.
func (it *Iter[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for it.front < it.back {
			k := it.front
			v, _ := it.Next()
			if !yield(k, v) {
				return
			}
		}
	}
}

// Backward yields (position, item) pairs from the back, consuming the iterator.
func (it *Iter[V]) Backward() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for it.front < it.back {
			v, _ := it.NextBack()
			if !yield(it.back, v) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func (it *Iter[V]) Collect() []V {
	out := make([]V, 0, it.Len())
	for _, v := range it.All() {
		out = append(out, v)
	}

	return out
}
