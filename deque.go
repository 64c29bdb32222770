// Package deque implements a double-ended queue over one contiguous buffer
// whose occupied range is kept centered.
//
// Building with the dequedebug tag checks the index invariants after every
// push and pop and panics on a violation:
//
//	go test -tags dequedebug ./...
package deque

import (
	"fmt"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/lucasgdosr/centerdeque/internal/errorutil"
)

// Deque is a double-ended queue stored in one contiguous buffer. The
// elements occupy the half-open slot range [front, back), which sits
// somewhere in the middle of the buffer so that both ends have room to
// grow.
//
// When a push finds no free slot at its end, the buffer is reallocated to
// 2.5 times its capacity and the elements are copied to its center. The
// buffer never shrinks. When a pop empties the Deque, both indices move back
// to the midpoint of the buffer.
//
// The zero value is an empty Deque with no capacity, ready to use. New
// allocates DefaultCapacity slots up front. A Deque is not safe for
// concurrent use.
type Deque[T any] struct {
	buf         []T
	front, back uint
	logger      *slog.Logger
	observer    GrowthObserver
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// New allocates a Deque with DefaultCapacity slots.
func New[T any]() *Deque[T] {
	return newDeque[T](defaultOptions())
}

// NewWithOptions allocates a Deque configured by opts. It returns an error
// wrapping ErrInvalidArgument if an option is unusable.
func NewWithOptions[T any](opts ...Option) (*Deque[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return newDeque[T](o), nil
}

// FromSlice copies s into a new Deque, centered in a buffer large enough to
// take 1.5*len(s) more pushes. Memory is not shared with s. Options that
// fail are skipped; the others still apply.
func FromSlice[T any](s []T, opts ...Option) *Deque[T] {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			_ = opt.applyOptions(&o)
		}
	}
	n := uint(len(s))
	o.capacity = max(o.capacity, int(n*growthNum/growthDen))
	d := newDeque[T](o)
	d.front = centerOffset(d.cap(), n)
	d.back = d.front + n
	copy(d.buf[d.front:], s)
	return d
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyOptions(&o); err != nil {
			return o, errtrace.Wrap(err)
		}
	}
	return o, nil
}

func newDeque[T any](o options) *Deque[T] {
	mid := uint(o.capacity) / 2
	return &Deque[T]{
		buf:      make([]T, o.capacity),
		front:    mid,
		back:     mid,
		logger:   o.logger,
		observer: o.observer,
	}
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return int(d.len())
}
func (d *Deque[T]) len() uint { return d.back - d.front }

// Cap returns the number of slots in the buffer.
func (d *Deque[T]) Cap() int  { return len(d.buf) }
func (d *Deque[T]) cap() uint { return uint(len(d.buf)) }

// Empty returns whether the Deque is empty.
func (d *Deque[T]) Empty() bool { return d.back == d.front }

// PushFront puts t before the first element, growing the buffer first if
// there is no free slot in front.
func (d *Deque[T]) PushFront(t T) {
	if d.front == 0 {
		d.grow()
	}
	d.front--
	d.buf[d.front] = t
	d.assertInvariants()
}

// PushBack puts t after the last element, growing the buffer first if there
// is no free slot behind.
func (d *Deque[T]) PushBack(t T) {
	if d.back == d.cap() {
		d.grow()
	}
	d.buf[d.back] = t
	d.back++
	d.assertInvariants()
}

// PopFront removes the first element and returns it. If the Deque is empty it
// does nothing and returns false. The vacated slot is zeroed.
func (d *Deque[T]) PopFront() (t T, ok bool) {
	if d.Empty() {
		return
	}
	var zero T
	t, d.buf[d.front] = d.buf[d.front], zero
	d.front++
	d.recenterIfEmpty()
	d.assertInvariants()
	return t, true
}

// PopBack removes the last element and returns it. If the Deque is empty it
// does nothing and returns false. The vacated slot is zeroed.
func (d *Deque[T]) PopBack() (t T, ok bool) {
	if d.Empty() {
		return
	}
	var zero T
	d.back--
	t, d.buf[d.back] = d.buf[d.back], zero
	d.recenterIfEmpty()
	d.assertInvariants()
	return t, true
}

// An emptied Deque restarts from the midpoint so that both ends get the same
// headroom again.
func (d *Deque[T]) recenterIfEmpty() {
	if d.Empty() {
		mid := d.cap() / 2
		d.front, d.back = mid, mid
	}
}

// Front returns a pointer to the first element. The pointer stays valid
// until the next push, which may reallocate the buffer.
func (d *Deque[T]) Front() (*T, error) {
	if d.Empty() {
		return nil, errtrace.Wrap(ErrEmptyContainer)
	}
	return &d.buf[d.front], nil
}

// Back returns a pointer to the last element. The pointer stays valid until
// the next push, which may reallocate the buffer.
func (d *Deque[T]) Back() (*T, error) {
	if d.Empty() {
		return nil, errtrace.Wrap(ErrEmptyContainer)
	}
	return &d.buf[d.back-1], nil
}

// PeekFront returns a copy of the first element, or false if the Deque is
// empty.
func (d *Deque[T]) PeekFront() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.buf[d.front], true
}

// PeekBack returns a copy of the last element, or false if the Deque is
// empty.
func (d *Deque[T]) PeekBack() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.buf[d.back-1], true
}

// Clear empties the Deque in O(d.Len()), zeroing the elements and keeping
// the capacity. The indices move back to the midpoint.
func (d *Deque[T]) Clear() {
	clear(d.buf[d.front:d.back])
	mid := d.cap() / 2
	d.front, d.back = mid, mid
}

/*****************************************************************************
 * INDEX API
 *****************************************************************************/

// At returns a pointer to the element at position pos, counting from the
// front. It fails with ErrEmptyContainer on an empty Deque and with
// ErrIndexOutOfRange unless 0 <= pos < d.Len().
func (d *Deque[T]) At(pos int) (*T, error) {
	if err := d.checkPos(pos); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &d.buf[d.front+uint(pos)], nil
}

// Get returns a copy of the element at position pos. It fails like At.
func (d *Deque[T]) Get(pos int) (t T, err error) {
	if err = d.checkPos(pos); err != nil {
		return t, errtrace.Wrap(err)
	}
	return d.buf[d.front+uint(pos)], nil
}

// Set overwrites the element at position pos. It fails like At.
func (d *Deque[T]) Set(pos int, t T) error {
	if err := d.checkPos(pos); err != nil {
		return errtrace.Wrap(err)
	}
	d.buf[d.front+uint(pos)] = t
	return nil
}

func (d *Deque[T]) checkPos(pos int) error {
	if d.Empty() {
		return ErrEmptyContainer //errtrace:skip
	}
	if pos < 0 || pos >= d.Len() {
		return errorutil.NewIndexOutOfRangeError(pos, d.Len()) //errtrace:skip
	}
	return nil
}

/*****************************************************************************
 * INVARIANTS
 *****************************************************************************/

func (d *Deque[T]) assertInvariants() {
	if debugInvariants {
		d.checkInvariants()
	}
}

// checkInvariants panics if the indices do not describe a valid occupied
// range. A failure is a bug in this package, not a caller error.
func (d *Deque[T]) checkInvariants() {
	if d.front > d.back || d.back > d.cap() {
		panic(fmt.Sprintf("deque: broken indices front=%d back=%d cap=%d", d.front, d.back, d.cap()))
	}
	if d.Empty() && d.front != d.cap()/2 && d.cap() > 0 {
		panic(fmt.Sprintf("deque: empty deque not centered front=%d cap=%d", d.front, d.cap()))
	}
}
