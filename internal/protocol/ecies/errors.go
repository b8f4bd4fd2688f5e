package ecies

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// KindInvalidArgument marks inputs rejected before any resource is
	// allocated or any key agreement attempted.
	KindInvalidArgument Kind = iota + 1
	// KindPrimitive marks a failure reported by an underlying
	// primitive: key agreement, the cipher or the point codec.
	KindPrimitive
	// KindInternal marks an invariant violation: a serialized length
	// or capacity that can only be wrong through a bug, never through
	// user input. Internal failures are not silently tolerated.
	KindInternal
	// KindAuthentication marks a tag mismatch on decrypt.
	KindAuthentication
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindPrimitive:
		return "primitive failure"
	case KindInternal:
		return "internal error"
	case KindAuthentication:
		return "authentication failure"
	}
	return "unknown"
}

// ErrAuthentication is wrapped by every authentication failure, so
// callers can match it with errors.Is without inspecting kinds.
var ErrAuthentication = errors.New("message authentication failed")

// Error carries the failing operation, its classification and the
// underlying cause.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ecies: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsAuthentication reports whether err is a tag-verification failure.
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

func errf(op string, kind Kind, format string, args ...any) error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

func wrap(op string, kind Kind, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}
