package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
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

// Error codes for the console's failure taxonomy: client-side
// validation, transport failure, and non-2xx HTTP responses.
const (
	ErrValidation ErrorCode = iota + 1000
	ErrTransport
	ErrHTTP
	ErrNotFound
	ErrInternal
)

// Validation reports a client-side check that failed before any
// network call was made.
func Validation(format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// Transport wraps a network-level failure (connection refused, DNS,
// connection reset). The request may or may not have reached the
// backend.
func Transport(err error) *AppError {
	return &AppError{
		Code:    ErrTransport,
		Message: "request failed",
		Err:     err,
	}
}

// HTTPError records a non-2xx response from the backend.
type HTTPError struct {
	AppError
	Status int `json:"status"`
}

func HTTP(status int, method, path string) *HTTPError {
	return &HTTPError{
		AppError: AppError{
			Code:    ErrHTTP,
			Message: fmt.Sprintf("%s %s returned %d", method, path, status),
		},
		Status: status,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal error",
		Err:     err,
	}
}

// IsValidation reports whether err is a client-side validation
// failure, meaning no network call was attempted.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrValidation
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrTransport
}
