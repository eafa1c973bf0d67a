package common

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeValidation     Code = "validation"
	CodeConflict       Code = "conflict"
	CodeBadCredentials Code = "bad_credentials"
	CodeUnauthorized   Code = "unauthorized"
	CodeForbidden      Code = "forbidden"
	CodeNotFound       Code = "not_found"
	CodeInternal       Code = "internal"
)

// Error is the coded error every service returns. Handlers map the code to
// an HTTP status and only ever expose Message to clients; the wrapped cause
// stays in the diagnostic log.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func NewValidationError(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

func HTTPStatus(err error) int {
	var coded *Error
	if !errors.As(err, &coded) {
		return http.StatusInternalServerError
	}
	switch coded.Code {
	case CodeValidation, CodeConflict, CodeBadCredentials:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to put in a response body. Anything
// that is not a coded error gets the generic server-error text.
func ClientMessage(err error) string {
	var coded *Error
	if errors.As(err, &coded) && coded.Code != CodeInternal {
		return coded.Message
	}
	return "Internal server error."
}
