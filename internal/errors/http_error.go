package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int    `json:"-"`
	Kind    string `json:"code"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Kind:    kindForStatus(code),
		Message: message,
	}
}

// Helper for common errors
var (
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
	ErrForbidden    = func(msg string) *HTTPError { return NewHTTPError(http.StatusForbidden, msg) }
	ErrBadRequest   = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
)

// FromError maps a domain error onto the HTTP status the transport returns.
// Unknown errors become a 500 with a generic message so storage details never leak.
func FromError(err error) *HTTPError {
	var (
		httpErr   *HTTPError
		validErr  *ValidationError
		notFound  *NotFoundError
		authzErr  *AuthorizationError
		authnErr  *AuthenticationError
		conflictE *ConflictError
	)
	switch {
	case stderrors.As(err, &httpErr):
		return httpErr
	case stderrors.As(err, &validErr):
		return NewHTTPError(http.StatusBadRequest, validErr.Error())
	case stderrors.As(err, &notFound):
		return NewHTTPError(http.StatusNotFound, notFound.Error())
	case stderrors.As(err, &authzErr):
		return NewHTTPError(http.StatusForbidden, authzErr.Error())
	case stderrors.As(err, &authnErr):
		return NewHTTPError(http.StatusUnauthorized, authnErr.Error())
	case stderrors.As(err, &conflictE):
		return NewHTTPError(http.StatusConflict, conflictE.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

func kindForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "validation_error"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	default:
		return "internal_server_error"
	}
}
