package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when a user with the same email already exists.
	ErrEmailTaken = errors.New("Email already exists")
	// ErrInvalidCredentials is returned on any login mismatch. It is shared by
	// the "unknown email" and "wrong password" cases so the response does not
	// reveal which one happened.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// ErrorResponse is the plain error body used by the non-auth endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse
// to a generic 500 so store internals never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
