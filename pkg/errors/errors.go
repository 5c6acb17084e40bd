package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that already knows how it should be rendered.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
	Data       any
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError whose error code equals the status code.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: status, Message: message}
}

// WithData returns a copy of e carrying data in the response body.
func (e *HTTPError) WithData(data any) *HTTPError {
	cp := *e
	cp.Data = data
	return &cp
}

// ValidationError marks bad input that should render as 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// NewValidationError builds a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var (
	ErrUnauthorized = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrForbidden    = NewHTTPError(http.StatusForbidden, "Forbidden")
	ErrNotFound     = NewHTTPError(http.StatusNotFound, "Not Found")
)

// AsHTTPError unwraps err to an *HTTPError if there is one in its chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// AsValidationError unwraps err to a *ValidationError if there is one in its chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
