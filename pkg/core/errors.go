package core

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error kinds
// =============================================================================

// Error kinds returned by interval operations. Match them with errors.Is.
var (
	// ErrInvalidArgument is returned for a count that is not a non-negative
	// integer, or for a wrong number of arguments.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOperation is returned when an operation needs an endpoint
	// the interval does not have.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrTypeMismatch is returned when a value is of the wrong kind for the
	// operation, such as an exclusive non-integer upper bound for max.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Error describes a failed interval operation.
type Error struct {
	Op   string // operation name, e.g. "first" or "max"
	Kind error  // one of the Err* kinds above
	Msg  string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Unwrap returns the error kind so errors.Is matches it.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Errorf builds an *Error of the given kind.
func Errorf(kind error, op, format string, args ...any) error {
	return &Error{Op: op, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the error kind carried by err, or nil if err is not one of
// the core kinds.
func KindOf(err error) error {
	for _, kind := range []error{ErrInvalidArgument, ErrUnsupportedOperation, ErrTypeMismatch} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
