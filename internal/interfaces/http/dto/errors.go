package dto

import (
	"net/http"
	"strings"
)

// Error codes returned in the "code" field of an error body.
// Domain errors carry their own code through unchanged.

// General error codes
const (
	// ErrCodeInternal is used for unexpected server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// Validation error codes
const (
	// ErrCodeValidation is used when request data fails validation
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeInvalidInput is used for malformed input
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeBadRequest is used when the body cannot be parsed
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidState is used when an operation is invalid for the current status
	ErrCodeInvalidState = "INVALID_STATE"
	// ErrCodeEmptyCart is used when checking out an empty cart
	ErrCodeEmptyCart = "EMPTY_CART"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is missing
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeInvalidCredentials is used when login fails
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	// ErrCodeAccountDeactivated is used when an inactive user signs in
	ErrCodeAccountDeactivated = "ACCOUNT_DEACTIVATED"
	// ErrCodeTokenExpired is used when the token has expired
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the token is malformed or has the wrong type
	ErrCodeTokenInvalid = "TOKEN_INVALID"
	// ErrCodeTokenRevoked is used when the token was blacklisted
	ErrCodeTokenRevoked = "TOKEN_REVOKED"
	// ErrCodeTokenMaxRefresh is used when the refresh chain is exhausted
	ErrCodeTokenMaxRefresh = "TOKEN_MAX_REFRESH"
	// ErrCodeForbidden is used when the caller lacks permission
	ErrCodeForbidden = "FORBIDDEN"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is missing or outside the caller's scope
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used for unique violations
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeConflict is used for general conflicts
	ErrCodeConflict = "CONFLICT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation and state errors -> 400 Bad Request
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidState: http.StatusBadRequest,
	ErrCodeEmptyCart:    http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeAccountDeactivated: http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeTokenRevoked:       http.StatusUnauthorized,
	ErrCodeTokenMaxRefresh:    http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,

	// Resource errors
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Codes outside the table fall back to their naming family
// (INVALID_*, *_NOT_FOUND, *_EXISTS, TOKEN_*), then to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	switch {
	case strings.HasPrefix(code, "TOKEN_"):
		return http.StatusUnauthorized
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "_EXISTS"), strings.HasPrefix(code, "DUPLICATE_"):
		return http.StatusConflict
	case strings.HasPrefix(code, "INVALID_"), strings.HasPrefix(code, "CANNOT_"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
