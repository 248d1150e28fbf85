package errors

import (
	"errors"
	"fmt"
)

// AppError is the application-level error carried across layers.
// Code identifies the error class for clients, Message is safe to show,
// Err is the internal cause and is never serialized.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap makes AppError compatible with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a business code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap converts a low-level error (database, redis, ...) into an internal
// AppError, hiding the cause from clients.
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// Error code ranges:
// - 404xx  referenced entity absent (not found)
// - 409xx  uniqueness violation on create/update (conflict)
// - 400xx  business rule violation
// - 40900-40909  request parameter/validation errors
// - 401xx  authentication
// - 500xx  server side
const (
	// Server-side errors (50000-50099)
	ErrCodeInternal      = 50000
	ErrCodeDatabaseError = 50001
	ErrCodeRedisError    = 50002

	// Authentication errors (40100-40199)
	ErrCodeUnauthorized    = 40100
	ErrCodeInvalidToken    = 40101
	ErrCodeTokenExpired    = 40102
	ErrCodeInvalidPassword = 40103
	ErrCodeForbidden       = 40104

	// Resource not found (40400-40499)
	ErrCodeNotFound         = 40400
	ErrCodeAuthorNotFound   = 40401
	ErrCodeBookNotFound     = 40402
	ErrCodeCategoryNotFound = 40403
	ErrCodeMemberNotFound   = 40404
	ErrCodeLoanNotFound     = 40405
	ErrCodeStaffNotFound    = 40406

	// Business rule violations (40000-40099)
	ErrCodeBusinessError     = 40000
	ErrCodeMemberSuspended   = 40001
	ErrCodeNoCopiesLeft      = 40002
	ErrCodeQuotaExceeded     = 40003
	ErrCodeAlreadyBorrowed   = 40004
	ErrCodeAlreadyReturned   = 40005
	ErrCodeCopiesExceedTotal = 40006
	ErrCodeWeakPassword      = 40007

	// Parameter errors (40900-40909)
	ErrCodeInvalidParams = 40900
	ErrCodeBindError     = 40901

	// Uniqueness conflicts (40910-40919)
	ErrCodeDuplicateEntry    = 40910
	ErrCodeISBNDuplicate     = 40911
	ErrCodeEmailDuplicate    = 40912
	ErrCodeCategoryDuplicate = 40913
	ErrCodeAuthorDuplicate   = 40914
)

// Predefined errors shared across packages.
var (
	ErrInternal      = New(ErrCodeInternal, "internal server error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "database error")
	ErrRedisError    = New(ErrCodeRedisError, "cache service error")

	ErrUnauthorized    = New(ErrCodeUnauthorized, "authentication required")
	ErrInvalidToken    = New(ErrCodeInvalidToken, "invalid token")
	ErrTokenExpired    = New(ErrCodeTokenExpired, "token expired")
	ErrInvalidPassword = New(ErrCodeInvalidPassword, "invalid password")
	ErrForbidden       = New(ErrCodeForbidden, "access denied")

	ErrWeakPassword = New(ErrCodeWeakPassword, "password too weak (8-20 chars, letters and digits)")

	ErrInvalidParams = New(ErrCodeInvalidParams, "invalid parameters")
	ErrBindError     = New(ErrCodeBindError, "malformed request parameters")
)

// IsAppError reports whether err is (or wraps) an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, wrapping unknown errors as
// internal so nothing low-level leaks to a client.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "internal server error")
}

// IsNotFound reports whether err carries a not-found code.
func IsNotFound(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code >= 40400 && appErr.Code <= 40499
}

// IsConflict reports whether err carries a uniqueness-conflict code.
func IsConflict(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code >= 40910 && appErr.Code <= 40919
}

// IsBusinessRule reports whether err is a business rule violation.
func IsBusinessRule(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code >= 40000 && appErr.Code <= 40099
}
