// Package errors defines the application error taxonomy shared by the use
// cases and the delivery layer.
package errors

import (
	"net/http"

	"beacon/internal/errors"
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
	// ErrMissingDeviceIdentity rejects a payload missing serialNumber or
	// deviceId. Raised before any write is attempted; not retryable as-is.
	ErrMissingDeviceIdentity = NewBaseError(
		http.StatusBadRequest,
		"MISSING_DEVICE_IDENTITY",
		"payload must carry both serialNumber and deviceId",
		"",
	)

	// ErrIdentityConflict rejects a payload whose (serialNumber, deviceId)
	// pair collides with an already-committed pairing. Requires operator
	// intervention; automatic retry will not succeed.
	ErrIdentityConflict = NewBaseError(
		http.StatusConflict,
		"DEVICE_IDENTITY_CONFLICT",
		"serial number or device ID is already paired with a different device",
		"",
	)

	// ErrIngestFailed covers any other transactional failure. The whole
	// payload rolled back, and because every write is upsert-based the
	// payload is safe to retry in full.
	ErrIngestFailed = NewBaseError(
		http.StatusInternalServerError,
		"INGEST_FAILED",
		"failed to store telemetry payload",
		"",
	)
)
