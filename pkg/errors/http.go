package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the status code it should be rendered with.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    any
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// WithDetails attaches a payload rendered under the "errors" key of the response.
func (e *HTTPError) WithDetails(details any) *HTTPError {
	e.Details = details
	return e
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests, slow down")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
)
