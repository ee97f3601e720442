package apperror

import (
	"errors"
	"net/http"
)

// MessagePrefix starts every message shown to a kiosk customer
const MessagePrefix = "[ERROR] "

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrTooManyRequest = &AppError{Code: http.StatusTooManyRequests, Message: "Too many requests, please try again later"}
)

// Kiosk input errors. The console prints the message and asks again.
var (
	ErrInvalidOrderFormat = &AppError{Code: http.StatusBadRequest, Message: MessagePrefix + "Invalid input format. Please try again."}
	ErrProductNotFound    = &AppError{Code: http.StatusNotFound, Message: MessagePrefix + "Product does not exist. Please try again."}
	ErrZeroQuantity       = &AppError{Code: http.StatusBadRequest, Message: MessagePrefix + "Quantity must be at least 1. Please try again."}
	ErrExceedsStock       = &AppError{Code: http.StatusUnprocessableEntity, Message: MessagePrefix + "Requested quantity exceeds stock. Please try again."}
	ErrInvalidAnswer      = &AppError{Code: http.StatusBadRequest, Message: MessagePrefix + "Invalid input. Please enter Y or N."}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// WithField returns a copy of err carrying one field error.
// Kiosk errors are shared values, so they are never mutated in place.
func WithField(err *AppError, field, message string) *AppError {
	c := *err
	c.Errors = append(append([]FieldError(nil), err.Errors...), FieldError{Field: field, Message: message})
	return &c
}

// Is matches AppErrors by code and message so errors.Is works on copies made by WithField
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
