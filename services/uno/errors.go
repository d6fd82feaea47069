package uno

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a rule violation. The HTTP layer maps every kind to a
// status code, the rules never do.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindUnauthorized
	KindConflict
	KindMethodNotAllowed
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	}
	return "unknown"
}

// Error is returned by every game operation that fails a precondition.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func ValidationError(format string, args ...interface{}) error {
	return newError(KindValidation, format, args...)
}

func NotFoundError(format string, args ...interface{}) error {
	return newError(KindNotFound, format, args...)
}

func UnauthorizedError(format string, args ...interface{}) error {
	return newError(KindUnauthorized, format, args...)
}

func ConflictError(format string, args ...interface{}) error {
	return newError(KindConflict, format, args...)
}

func MethodNotAllowedError(format string, args ...interface{}) error {
	return newError(KindMethodNotAllowed, format, args...)
}

// KindOf returns the kind of a game error anywhere in the chain, or 0 for
// unexpected errors (storage failures and the like).
func KindOf(err error) ErrorKind {
	var gameErr *Error
	if errors.As(err, &gameErr) {
		return gameErr.Kind
	}
	return 0
}

// IsKind reports whether err is a game error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
