package deque

import (
	"iter"
	"slices"
)

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// Values returns an iterator over the elements from front to back. If you
// need positions, use All instead. The result of modifying the Deque during
// iteration is unspecified.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range d.view() {
			if !yield(t) {
				return
			}
		}
	}
}

// All returns an iterator over position-element pairs from front to back.
// It has the same semantics as slices.All.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, t := range d.view() {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Backward returns an iterator over position-element pairs from back to
// front. It has the same semantics as slices.Backward.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := d.view()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// ForEach calls f for every element in order, until the first call that
// returns false.
func (d *Deque[T]) ForEach(f func(T) bool) {
	for _, t := range d.view() {
		if !f(t) {
			return
		}
	}
}

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// view is the occupied range. It aliases the buffer and must not leave the
// package.
func (d *Deque[T]) view() []T {
	if d == nil {
		return nil
	}
	return d.buf[d.front:d.back:d.back]
}

// Slice allocates a slice holding a copy of every element in order.
func (d *Deque[T]) Slice() []T {
	return slices.Clone(d.view())
}

// CopySlice has the same semantics as the copy built-in. It copies elements
// starting at position start until buf is full or the Deque is over, and
// returns the number of elements copied. It panics if start is out of
// [0, d.Len()].
func (d *Deque[T]) CopySlice(start int, buf []T) int {
	return copy(buf, d.view()[start:])
}

// ContainsFunc returns whether an element satisfying f is in the Deque.
func (d *Deque[T]) ContainsFunc(f func(T) bool) bool {
	return slices.ContainsFunc(d.view(), f)
}

// IndexFunc returns the position of the first element that satisfies f, or
// -1 if none do.
func (d *Deque[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(d.view(), f)
}

// EqualFunc returns whether both Deques have the same length and f reports
// every pair of elements in the same position as equal. Two nil Deques are
// equal, but an empty Deque and nil are not.
func (d *Deque[T]) EqualFunc(other *Deque[T], f func(T, T) bool) bool {
	if d == nil || other == nil {
		return d == other
	}
	return slices.EqualFunc(d.view(), other.view(), f)
}

// Contains returns whether t is in the Deque. It is a function rather than a
// method so that Deque is not constrained to comparable elements.
func Contains[T comparable](d *Deque[T], t T) bool {
	return slices.Contains(d.view(), t)
}

// Index returns the position of the first occurrence of t, or -1 if absent.
func Index[T comparable](d *Deque[T], t T) int {
	return slices.Index(d.view(), t)
}

// Equal returns whether both Deques hold the same elements in the same
// order. Capacity and placement in the buffer do not matter. Two nil Deques
// are equal, but an empty Deque and nil are not.
func Equal[T comparable](d1, d2 *Deque[T]) bool {
	if d1 == nil || d2 == nil {
		return d1 == d2
	}
	return slices.Equal(d1.view(), d2.view())
}
