package errors

import (
	"net/http"

	"warden/internal/errors"
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

// Predefined error types
var (
	// Role / input validation errors. Both are terminal: no remote call is
	// made when one of these is raised.
	ErrApprovableRoleRequired = NewBaseError(
		http.StatusBadRequest,
		"APPROVABLE_ROLE_REQUIRED",
		"Valid role (restaurant or driver) is required",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Invalid role specified",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// Admin account errors
	ErrAdminAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ADMIN_ALREADY_EXISTS",
		"Admin with this email already exists",
		"",
	)

	ErrAdminNotFound = NewBaseError(
		http.StatusUnauthorized,
		"ADMIN_NOT_FOUND",
		"Invalid token. Admin not found.",
		"",
	)

	ErrAdminCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ADMIN_CREATION_FAILED",
		"Failed to create admin",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid token.",
		"",
	)

	ErrAdminPrivilegesRequired = NewBaseError(
		http.StatusForbidden,
		"ADMIN_PRIVILEGES_REQUIRED",
		"Access denied. Admin privileges required.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Remote store errors
	ErrDirectoryUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"AUTH_SERVICE_UNREACHABLE",
		"Error communicating with auth service",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// RemoteError carries a non-2xx reply from the remote user store. The
// upstream status code and raw body are preserved so the gateway can forward
// the upstream's diagnostic detail to the caller verbatim.
type RemoteError struct {
	StatusCode int
	Body       []byte
}

// NewRemoteError creates a RemoteError from an upstream reply.
func NewRemoteError(statusCode int, body []byte) *RemoteError {
	return &RemoteError{StatusCode: statusCode, Body: body}
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	return "remote user store returned status " + http.StatusText(e.StatusCode)
}

// HTTPCode returns the upstream HTTP status code
func (e *RemoteError) HTTPCode() int {
	return e.StatusCode
}

// ErrorCode returns the business error code
func (e *RemoteError) ErrorCode() string {
	return "REMOTE_ERROR"
}

// Message returns the user-friendly error message
func (e *RemoteError) Message() string {
	return http.StatusText(e.StatusCode)
}

// Details returns the raw upstream body
func (e *RemoteError) Details() string {
	return string(e.Body)
}

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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
