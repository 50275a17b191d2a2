// Package errors provides custom error types for the fintrack API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	"fmt"
	"net/http"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
// Hint is a secondary user-facing sentence rendered as "message", and
// Details carries field-level validation failures.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	Hint       string       `json:"message,omitempty"`
	Details    []FieldError `json:"details,omitempty"`
	StatusCode int          `json:"-"`
	Internal   error        `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so that
// errors.Is(err, ErrValidation) matches copies made by Wrap and friends.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func clone(sentinel *AppError) *AppError {
	c := *sentinel
	return &c
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	e := clone(sentinel)
	e.Internal = internal
	return e
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	e := clone(sentinel)
	e.Message = message
	return e
}

// WithDetails creates a new AppError carrying field-level failures.
func WithDetails(sentinel *AppError, details []FieldError) *AppError {
	e := clone(sentinel)
	e.Details = details
	return e
}

// Upstream creates an error that mirrors the status of a rejecting third-party
// provider. Statuses outside the 4xx/5xx range are reported as 502.
func Upstream(provider string, status int, message string, internal error) *AppError {
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusBadGateway
	}
	return &AppError{
		Code:       ErrUpstream.Code,
		Message:    fmt.Sprintf("%s API Error: %s", provider, message),
		StatusCode: status,
		Internal:   internal,
	}
}

// General errors.
var (
	ErrInvalidInput     = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound         = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrMethodNotAllowed = &AppError{Code: "METHOD_NOT_ALLOWED", Message: "Method not allowed", StatusCode: http.StatusMethodNotAllowed}
	ErrInternalServer   = &AppError{Code: "INTERNAL_ERROR", Message: "Internal server error", StatusCode: http.StatusInternalServerError}
)

// Validation errors.
var (
	ErrValidation = &AppError{
		Code:       "VALIDATION_FAILED",
		Message:    "Validation failed",
		Hint:       "Please check your input and try again.",
		StatusCode: http.StatusBadRequest,
	}
	ErrInsertValidation = &AppError{
		Code:       "VALIDATION_FAILED",
		Message:    "Data validation failed",
		Hint:       "Invalid transaction data.",
		StatusCode: http.StatusBadRequest,
	}
)

// Transaction errors.
var (
	ErrDuplicateTransaction = &AppError{Code: "DUPLICATE_TRANSACTION", Message: "Transaction already exists", StatusCode: http.StatusConflict}
	ErrInvalidReference     = &AppError{Code: "INVALID_REFERENCE", Message: "Invalid reference data", StatusCode: http.StatusBadRequest}
	ErrTransactionSave      = &AppError{
		Code:       "TRANSACTION_SAVE_FAILED",
		Message:    "Failed to save transaction",
		Hint:       "An unexpected error occurred. Please try again.",
		StatusCode: http.StatusInternalServerError,
	}
	ErrSearchFailed    = &AppError{Code: "SEARCH_FAILED", Message: "Failed to search transactions", StatusCode: http.StatusInternalServerError}
	ErrAnalyticsFailed = &AppError{Code: "ANALYTICS_FAILED", Message: "Failed to load transaction analytics", StatusCode: http.StatusInternalServerError}
)

// Advisor errors.
var (
	ErrMessageRequired = &AppError{Code: "MESSAGE_REQUIRED", Message: "Message is required", StatusCode: http.StatusBadRequest}
	ErrUpstream        = &AppError{Code: "UPSTREAM_ERROR", Message: "Upstream provider error", StatusCode: http.StatusBadGateway}
	ErrAdvisorDisabled = &AppError{Code: "ADVISOR_UNAVAILABLE", Message: "AI advisor is not configured", StatusCode: http.StatusServiceUnavailable}
)
