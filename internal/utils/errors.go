package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lib/pq"
)

// Custom error types for the application
var (
	ErrNotFound           = errors.New("resource not found")
	ErrBadRequest         = errors.New("invalid request")
	ErrInternalServer     = errors.New("internal server error")
	ErrValidation         = errors.New("validation error")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrExpiredToken       = errors.New("expired token")
	ErrUsedToken          = errors.New("token already used")
	ErrUserMissing        = errors.New("token user missing")
	ErrPolicyViolation    = errors.New("password policy violation")
	ErrBadMonthFormat     = errors.New("bad month format")
)

// AppError represents an application error with additional context
type AppError struct {
	Err        error  // The underlying error
	StatusCode int    // HTTP status code
	Message    string // User-friendly error message
	Field      string // Field related to the error (for validation errors)
	Details    map[string]string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error for a specific field
func NewValidationError(field, message string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Field:      field,
	}
}

// NewValidationErrorWithDetails creates a validation error with multiple field details
func NewValidationErrorWithDetails(message string, details map[string]string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Details:    details,
	}
}

// NewMissingFieldsError creates a validation error listing the missing fields
func NewMissingFieldsError(fields []string) *AppError {
	details := make(map[string]string, len(fields))
	for _, f := range fields {
		details[f] = "This field is required"
	}
	return &AppError{
		Err:        ErrValidation,
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf("Missing one or more required fields: %s", strings.Join(fields, ", ")),
		Details:    details,
	}
}

// NewInvalidAmountError creates a validation error for a non-numeric amount
func NewInvalidAmountError() *AppError {
	return &AppError{
		Err:        ErrValidation,
		StatusCode: http.StatusBadRequest,
		Message:    "Amount must be a number",
		Field:      "amount",
	}
}

// NewNegativeAmountError creates a validation error for a negative amount
func NewNegativeAmountError() *AppError {
	return &AppError{
		Err:        ErrValidation,
		StatusCode: http.StatusBadRequest,
		Message:    "Amount must not be negative",
		Field:      "amount",
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Err:        ErrBadRequest,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resourceType string, identifier interface{}) *AppError {
	return &AppError{
		Err:        ErrNotFound,
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("%s with identifier '%v' not found", resourceType, identifier),
	}
}

// NewInternalServerError creates a new internal server error
func NewInternalServerError(err error) *AppError {
	return &AppError{
		Err:        ErrInternalServer,
		StatusCode: http.StatusInternalServerError,
		Message:    "An internal server error occurred",
	}
}

// NewDuplicateError creates a new duplicate resource error
func NewDuplicateError(resourceType, field string, value interface{}) *AppError {
	return &AppError{
		Err:        ErrDuplicate,
		StatusCode: http.StatusConflict,
		Message:    fmt.Sprintf("%s with %s '%v' already exists", resourceType, field, value),
		Field:      field,
	}
}

// NewInvalidCredentialsError creates a new invalid credentials error
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Err:        ErrInvalidCredentials,
		StatusCode: http.StatusUnauthorized,
		Message:    "Invalid username or password",
	}
}

// NewPolicyViolationError creates an error for a password that fails the policy
func NewPolicyViolationError(message string) *AppError {
	return &AppError{
		Err:        ErrPolicyViolation,
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Field:      "new_password",
	}
}

// NewExpiredTokenError creates an error for a reset token past its expiry
func NewExpiredTokenError() *AppError {
	return &AppError{
		Err:        ErrExpiredToken,
		StatusCode: http.StatusBadRequest,
		Message:    "Token has expired",
	}
}

// NewUsedTokenError creates an error for a reset token that was already consumed
func NewUsedTokenError() *AppError {
	return &AppError{
		Err:        ErrUsedToken,
		StatusCode: http.StatusBadRequest,
		Message:    "Token has already been used",
	}
}

// NewTokenUserMissingError creates an error for a reset token whose user no longer exists
func NewTokenUserMissingError() *AppError {
	return &AppError{
		Err:        ErrUserMissing,
		StatusCode: http.StatusBadRequest,
		Message:    "Token does not belong to an existing user",
	}
}

// NewBadMonthFormatError creates an error for a month string not in YYYY-MM form
func NewBadMonthFormatError(month string) *AppError {
	return &AppError{
		Err:        ErrBadMonthFormat,
		StatusCode: http.StatusBadRequest,
		Message:    "Month must be in YYYY-MM format",
		Field:      "month",
	}
}

// ParseError attempts to parse various types of errors into an AppError
func ParseError(err error) *AppError {
	// If it's already an AppError, return it
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	// Check for specific error types
	switch {
	case errors.Is(err, ErrNotFound):
		return NewNotFoundError("Resource", "")
	case errors.Is(err, ErrBadRequest):
		return NewBadRequestError(err.Error())
	case errors.Is(err, ErrValidation):
		return NewValidationError("", err.Error())
	case errors.Is(err, ErrDuplicate):
		return NewDuplicateError("Resource", "", "")
	case errors.Is(err, ErrInvalidCredentials):
		return NewInvalidCredentialsError()
	case errors.Is(err, ErrBadMonthFormat):
		return NewBadMonthFormatError("")
	case errors.Is(err, ErrPolicyViolation):
		return NewPolicyViolationError(err.Error())
	}

	// Check for PostgreSQL-specific errors
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return &AppError{
				Err:        ErrDuplicate,
				StatusCode: http.StatusConflict,
				Message:    "A resource with the same unique identifier already exists",
				Field:      pqErr.Constraint,
			}
		case "23503": // foreign_key_violation
			return &AppError{
				Err:        ErrBadRequest,
				StatusCode: http.StatusBadRequest,
				Message:    "This operation violates a foreign key constraint",
			}
		case "23502": // not_null_violation
			return &AppError{
				Err:        ErrValidation,
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("The %s field cannot be empty", pqErr.Column),
				Field:      pqErr.Column,
			}
		}
	}

	// Check for general database-specific error patterns
	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint"):
		return &AppError{
			Err:        ErrDuplicate,
			StatusCode: http.StatusConflict,
			Message:    "A resource with the same unique identifier already exists",
		}
	case strings.Contains(errMsg, "not found") || strings.Contains(errMsg, "no rows"):
		return &AppError{
			Err:        ErrNotFound,
			StatusCode: http.StatusNotFound,
			Message:    "The requested resource could not be found",
		}
	}

	// Default to internal server error
	return NewInternalServerError(err)
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode == http.StatusNotFound
	}
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if an error is a duplicate resource error
func IsDuplicateError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode == http.StatusConflict
	}
	return errors.Is(err, ErrDuplicate)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return errors.Is(appErr.Err, ErrValidation)
	}
	return errors.Is(err, ErrValidation)
}

// IsResetTokenError reports whether an error is one of the reset-token failure
// conditions that must be collapsed into a single caller-facing message.
func IsResetTokenError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrUsedToken) ||
		errors.Is(err, ErrUserMissing)
}

// StatusCode returns the HTTP status code for an error
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
