// Package errors defines the application's error taxonomy. Domain services
// return AppError values; the HTTP error middleware maps them to status codes
// and stable user-facing messages.
package errors

import (
	"net/http"

	"tasklist/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// credentialsMessage is shared by the 404 and 401 login failures so the
// response never confirms whether the username exists.
const credentialsMessage = "incorrect username or password"

// Predefined error types
var (
	// Login failures. Status codes differ (absent username vs. wrong
	// password) but the message text is deliberately identical.
	ErrCredentialsNotFound = NewBaseError(
		http.StatusNotFound,
		"INVALID_CREDENTIALS",
		credentialsMessage,
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		credentialsMessage,
		"",
	)

	// User-related errors
	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"username is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"failed to create user",
		"",
	)

	// Token-related errors
	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"token expired",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"TOKEN_INVALID",
		"could not validate credentials",
		"",
	)

	ErrNotAuthorized = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHORIZED",
		"not authorized",
		"",
	)

	// Resource errors
	ErrListNotFound = NewBaseError(
		http.StatusNotFound,
		"LIST_NOT_FOUND",
		"list not found",
		"",
	)

	ErrTaskNotFound = NewBaseError(
		http.StatusNotFound,
		"TASK_NOT_FOUND",
		"task not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid request payload",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
