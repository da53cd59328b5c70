package errors

import "net/http"

// HTTPError is an error that carries the HTTP status it should be reported with.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewHTTPError creates an HTTPError. A zero code becomes 500.
func NewHTTPError(code int, message string) *HTTPError {
	if code == 0 {
		code = http.StatusInternalServerError
	}
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status of e.
func (e *HTTPError) StatusCode() int {
	return e.Code
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded, please slow down")
)
