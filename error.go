package econbrief

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// The extraction codes (EFETCH through EINSUFFICIENT) describe why a
// pipeline produced no usable text. Callers use them to decide whether a
// retry with a refreshed session cookie is worthwhile; see Retryable.
const (
	EINTERNAL     = "internal"
	EINVALID      = "invalid"
	EFETCH        = "fetch_failed"
	ECHALLENGE    = "blocked_by_challenge"
	ECONTAINER    = "container_missing"
	ESTRUCTURE    = "structure_changed"
	EINSUFFICIENT = "insufficient_content"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code & message.
//
// Any non-application error (such as a browser crash) is reported as an
// EINTERNAL error and the user only sees "Internal error.". The full
// details are logged instead.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("econbrief error: code=%s message=%s", e.Code, e.Message)
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

// Retryable reports whether err is a failure that may succeed on a later
// attempt, typically after the session cookie has been refreshed.
// Structural failures are not retryable: the site markup changed and only
// a code change can fix them.
func Retryable(err error) bool {
	switch ErrorCode(err) {
	case EFETCH, ECHALLENGE, ECONTAINER, EINSUFFICIENT:
		return true
	}
	return false
}

// Render turns a pipeline outcome into the text payload returned to the
// agent. Errors are encoded in-band with an "Error: " prefix.
func Render(text string, err error) string {
	if err != nil {
		return "Error: " + ErrorMessage(err)
	}
	return text
}
