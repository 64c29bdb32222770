// Package errorutil provides error helpers shared by the deque packages.
package errorutil

//go:generate errtrace -w .

import "fmt"

// Error is a string type that implements the error interface.
type Error string

func (s Error) Error() string { return string(s) }

const (
	// ErrInvalidArgument is returned when a constructor or option receives a bad value.
	ErrInvalidArgument Error = "invalid argument"
	// ErrEmptyContainer is returned by accessors called on an empty deque.
	ErrEmptyContainer Error = "empty container"
	// ErrIndexOutOfRange is returned when a position does not name an occupied slot.
	ErrIndexOutOfRange Error = "index out of range"
)

// NewWrapperError wraps sentinel with a message formatted from format and args.
func NewWrapperError(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)) //errtrace:skip
}

// NewInvalidArgumentError wraps [ErrInvalidArgument] with a formatted message.
func NewInvalidArgumentError(format string, args ...any) error {
	return NewWrapperError(ErrInvalidArgument, format, args...) //errtrace:skip
}

// NewIndexOutOfRangeError reports pos against the valid range [0, length).
func NewIndexOutOfRangeError(pos, length int) error {
	return NewWrapperError(ErrIndexOutOfRange, "index %d not in [0, %d)", pos, length) //errtrace:skip
}
