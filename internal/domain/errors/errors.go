// Package errors defines application errors that carry an HTTP status,
// a business error code and a user-facing message.
package errors

import (
	"net/http"

	"bookshelf/internal/errors"
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
	// Authentication and authorization
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"unauthorized access",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"forbidden access",
		"",
	)

	// Input validation
	ErrMissingEmail = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_MISSING",
		"email is missing",
		"",
	)

	ErrMissingQuery = NewBaseError(
		http.StatusBadRequest,
		"QUERY_MISSING",
		"query text missing",
		"",
	)

	ErrInvalidObjectID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"invalid document id",
		"",
	)

	ErrInvalidPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYLOAD",
		"invalid request payload",
		"",
	)

	// Lookups
	ErrBookNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOK_NOT_FOUND",
		"book not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	// Wishlist
	ErrWishlistDuplicate = NewBaseError(
		http.StatusConflict,
		"WISHLIST_DUPLICATE",
		"book already in wishlist",
		"",
	)

	// Persistence
	ErrDatabase = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"internal server error",
		"",
	)
)

// NewDatabaseError wraps a raw store error into the generic database error,
// keeping the cause for server-side logs only.
func NewDatabaseError(err error, message string) error {
	return errors.Wrap(ErrDatabase.WithDetails(err.Error()), message)
}
