package deque

import "github.com/lucasgdosr/centerdeque/internal/errorutil"

// Error is the type of the sentinel errors returned by this package.
type Error = errorutil.Error

const (
	// ErrEmptyContainer is returned by Front, Back, At, Get and Set when the
	// Deque holds no elements.
	ErrEmptyContainer = errorutil.ErrEmptyContainer
	// ErrIndexOutOfRange is returned by At, Get and Set when the position
	// does not designate an occupied slot.
	ErrIndexOutOfRange = errorutil.ErrIndexOutOfRange
	// ErrInvalidArgument is returned by NewWithOptions when an option
	// carries an unusable value, such as a negative capacity.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
)
