package common

import "fmt"

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is returned by constructors of preference and record stores. It wraps
// a return code (of type RetCode) and an error message.
//
// Only configuration problems are reported this way. I/O and conversion
// failures are handled inside the stores and never reach the caller.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("PrefsyncError (code %s): %s", e.Code, e.Msg)
}

// Is reports whether target is an *Error with the same code, so callers can
// use errors.Is(err, &common.Error{Code: common.RetCInvalidConfiguration}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess              RetCode = iota // 0: Operation executed successfully.
	RetCInternalError                       // 1: Operation failed due to an internal error.
	RetCInvalidConfiguration                // 2: A required construction parameter is missing or invalid.
)

func (c RetCode) String() string {
	switch c {
	case RetCSuccess:
		return "Success"
	case RetCInternalError:
		return "InternalError"
	case RetCInvalidConfiguration:
		return "InvalidConfiguration"
	default:
		return "Unknown"
	}
}
