package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode is the HTTP status an AppError maps to
type ErrorCode int

// AppError represents an application error. Message is safe to show to
// clients; Err carries the underlying cause for server-side logs only.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode reports the HTTP status for the error
func (e *AppError) StatusCode() int {
	return int(e.Code)
}

// Common error codes
const (
	ErrBadRequest ErrorCode = http.StatusBadRequest
	ErrNotFound   ErrorCode = http.StatusNotFound
	ErrInternal   ErrorCode = http.StatusInternalServerError
)

// Error constructors
func NewNotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func NewBadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    ErrBadRequest,
		Message: message,
		Err:     err,
	}
}

func NewInternal(message string, err error) *AppError {
	if message == "" {
		message = "internal server error"
	}
	return &AppError{
		Code:    ErrInternal,
		Message: message,
		Err:     err,
	}
}

// Common errors
func NotFound(resource string, err error) *AppError {
	return NewNotFound(resource, err)
}

func BadRequest(message string, err error) *AppError {
	return NewBadRequest(message, err)
}

func Internal(message string, err error) *AppError {
	return NewInternal(message, err)
}
