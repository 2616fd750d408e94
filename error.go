package cmdtree

import "errors"

// NewError creates a new error with the given error code and error.
func NewError(code ErrorCode, err error) error {
	return &Error{code: code, err: err}
}

// ErrorCode represents an error code for a specific error type.
type ErrorCode int

const (
	// ErrNoMatch means no command in the tree ran a handler for the given arguments.
	ErrNoMatch ErrorCode = iota + 1
	// ErrDuplicateName means two children of the same command share a name.
	ErrDuplicateName
	// ErrInvalidChild means a child could not be attached (nil, already attached, or an ancestor).
	ErrInvalidChild
	// ErrAlreadyDispatched means the command tree was already consumed by a dispatch call.
	ErrAlreadyDispatched
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrNoMatch:
		return "no match"
	case ErrDuplicateName:
		return "duplicate name"
	case ErrInvalidChild:
		return "invalid child"
	case ErrAlreadyDispatched:
		return "already dispatched"
	default:
		return "unknown error"
	}
}

// Error represents an error with an error code and an underlying error.
type Error struct {
	code ErrorCode
	err  error
}

// Code reports the error code.
func (e *Error) Code() ErrorCode {
	return e.code
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return convertErrorCode(e.code) + ": <nil>"
	}
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// IsCode reports whether any error in err's chain is an [*Error] with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.code == code
}
