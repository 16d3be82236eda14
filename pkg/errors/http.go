package errors

import "fmt"

// HTTPError is a domain error carrying the HTTP status it should be served
// with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string { return e.Message }

// NewHTTPError creates an HTTPError with a formatted message.
func NewHTTPError(status int, format string, args ...any) *HTTPError {
	return &HTTPError{StatusCode: status, Message: fmt.Sprintf(format, args...)}
}
