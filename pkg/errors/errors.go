package errors

import (
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeIsAFolder    ErrorType = "is_a_folder"
	ErrorTypeInternal     ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewUnauthorizedError creates a new unauthorized error.
// Callers deliberately get no detail about which check failed.
func NewUnauthorizedError() *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Message:    "Unauthorized",
		StatusCode: http.StatusUnauthorized,
	}
}

// NewNotFoundError creates a new not found error. Cross-owner access to a
// private file reports the same error as true absence.
func NewNotFoundError() *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    "Not found",
		StatusCode: http.StatusNotFound,
	}
}

// NewIsAFolderError creates the error for a content read on a folder
func NewIsAFolderError() *AppError {
	return &AppError{
		Type:       ErrorTypeIsAFolder,
		Message:    "A folder doesn't have content",
		StatusCode: http.StatusBadRequest,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// GetMessage returns the client-facing message for an error. Internal causes
// are never exposed to clients.
func GetMessage(err error) string {
	if appErr, ok := err.(*AppError); ok && appErr.Type != ErrorTypeInternal {
		return appErr.Message
	}
	return "Internal server error"
}
