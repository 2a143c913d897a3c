// Package errors provides custom error types for the Bankist core.
// Every declined banking action returns an AppError so front-ends can report
// it consistently; none of them is fatal and none leaves state half-changed.
package errors

import (
	"errors"
	"net/http"
)

// Kind groups error codes into the categories front-ends care about.
type Kind string

const (
	KindAuthentication Kind = "authentication_failed"
	KindValidation     Kind = "validation_failed"
	KindLoanIneligible Kind = "loan_ineligible"
	KindNotFound       Kind = "not_found"
	KindInternal       Kind = "internal"
)

// AppError represents a structured application error with an error code,
// human-readable message, category, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Kind       Kind   `json:"kind"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so that
// errors built with Wrap or WithMessage still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Kind:       sentinel.Kind,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Kind:       sentinel.Kind,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// KindOf returns the category of err, or KindInternal for non-AppErrors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Authentication errors.
var (
	ErrAuthenticationFailed = &AppError{Code: "AUTHENTICATION_FAILED", Message: "Invalid username or PIN", Kind: KindAuthentication, StatusCode: http.StatusUnauthorized}
	ErrNoActiveSession      = &AppError{Code: "NO_ACTIVE_SESSION", Message: "Log in to get started", Kind: KindValidation, StatusCode: http.StatusUnauthorized}
	ErrCloseMismatch        = &AppError{Code: "CLOSE_CREDENTIALS_MISMATCH", Message: "Username or PIN does not match the logged in account", Kind: KindAuthentication, StatusCode: http.StatusForbidden}
)

// Validation errors.
var (
	ErrInvalidInput        = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", Kind: KindValidation, StatusCode: http.StatusBadRequest}
	ErrInvalidAmount       = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be greater than zero", Kind: KindValidation, StatusCode: http.StatusBadRequest}
	ErrRecipientNotFound   = &AppError{Code: "RECIPIENT_NOT_FOUND", Message: "Recipient account not found", Kind: KindValidation, StatusCode: http.StatusBadRequest}
	ErrSelfTransfer        = &AppError{Code: "SELF_TRANSFER", Message: "Cannot transfer to the same account", Kind: KindValidation, StatusCode: http.StatusBadRequest}
	ErrInsufficientBalance = &AppError{Code: "INSUFFICIENT_BALANCE", Message: "Insufficient account balance", Kind: KindValidation, StatusCode: http.StatusBadRequest}
)

// Loan errors.
var (
	ErrLoanIneligible = &AppError{Code: "LOAN_INELIGIBLE", Message: "No deposit of at least 10% of the requested loan", Kind: KindLoanIneligible, StatusCode: http.StatusUnprocessableEntity}
)

// Lookup errors.
var (
	ErrAccountNotFound = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", Kind: KindNotFound, StatusCode: http.StatusNotFound}
	ErrTaskNotFound    = &AppError{Code: "TASK_NOT_FOUND", Message: "Scheduled task not found", Kind: KindNotFound, StatusCode: http.StatusNotFound}
)

// General errors.
var (
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", Kind: KindInternal, StatusCode: http.StatusInternalServerError}
)
