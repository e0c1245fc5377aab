package pagefeed

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFLICT = "conflict"
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"

	// EFETCH reports a page that could not be retrieved: network failure,
	// timeout, non-2xx status or a body over the size ceiling.
	EFETCH = "fetch"

	// ENOCONTENT reports a page with no element qualifying as a container.
	ENOCONTENT = "no_content"

	// ESELECTOR reports a suggested selector that matches nothing.
	ESELECTOR = "selector_resolution"

	// EUNAVAILABLE reports an analysis strategy that failed or returned
	// unusable content. Callers substitute a fallback.
	EUNAVAILABLE = "analysis_unavailable"

	// EPARSE reports a timestamp or embedded JSON that could not be parsed.
	// It is always recovered where it occurs.
	EPARSE = "parse"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pagefeed error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
