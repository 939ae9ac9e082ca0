package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindInsufficientStock
	KindInvalidState
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindInsufficientStock:
		return "insufficient_stock"
	case KindInvalidState:
		return "invalid_state"
	default:
		return "unknown"
	}
}

// Error is a domain error carrying a Kind.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

// Kind returns the error classification
func (e *Error) Kind() Kind {
	return e.kind
}

// NotFound creates a not-found error
func NotFound(format string, args ...interface{}) *Error {
	return &Error{kind: KindNotFound, msg: fmt.Sprintf(format, args...)}
}

// Validation creates a validation error
func Validation(format string, args ...interface{}) *Error {
	return &Error{kind: KindValidation, msg: fmt.Sprintf(format, args...)}
}

// InsufficientStock creates an insufficient-stock error
func InsufficientStock(format string, args ...interface{}) *Error {
	return &Error{kind: KindInsufficientStock, msg: fmt.Sprintf(format, args...)}
}

// InvalidState creates an invalid-state error
func InvalidState(format string, args ...interface{}) *Error {
	return &Error{kind: KindInvalidState, msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from an error chain, KindUnknown if none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
