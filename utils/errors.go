package utils

import "net/http"

// CustomError carries the HTTP status the error middleware should answer with.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError builds a CustomError with the given HTTP status.
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// NewWarning is a recoverable input problem: the user fixes the form and retries.
func NewWarning(message string) *CustomError {
	return NewCustomError(http.StatusBadRequest, message)
}
