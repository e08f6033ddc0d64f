package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnconvertibleCurrency indicates that a rate required for a conversion is missing.
var ErrUnconvertibleCurrency = errors.New("unconvertible currency")

// ErrRateFetchFailed indicates that the rate provider could not deliver a rate table.
// The rate store is left untouched whenever this is returned.
var ErrRateFetchFailed = errors.New("exchange rate fetch failed")

// ErrInvalidCredential indicates that an API key was rejected or is not configured.
var ErrInvalidCredential = errors.New("invalid API key")

// ErrExpensesDisabled indicates that expense creation is gated off because no validated
// API key is present.
var ErrExpensesDisabled = errors.New("expenses are disabled until a valid API key is configured")

// AppError carries an HTTP-style status code alongside a message and an optional cause.
type AppError struct {
	Code    int
	Message string
	Err     error
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

// NewAppError creates an AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewConflictError creates an AppError that matches ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}
