package errors

import (
	"errors"
)

var (
	ErrValidation         = errors.New("invalid input")
	ErrDuplicateAccount   = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("missing or invalid bearer token")
	ErrTokenMalformed     = errors.New("token malformed")
	ErrTokenSignature     = errors.New("token signature invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrAccountNotFound    = errors.New("account not found")
)

// Code maps an error to the stable wire code returned to clients.
// Anything outside the taxonomy is reported as StorageUnavailable so
// internal failure detail never leaks.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "ValidationError"
	case errors.Is(err, ErrDuplicateAccount):
		return "DuplicateAccount"
	case errors.Is(err, ErrInvalidCredentials):
		return "InvalidCredentials"
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrTokenMalformed),
		errors.Is(err, ErrTokenSignature),
		errors.Is(err, ErrTokenExpired):
		return "Unauthorized"
	case errors.Is(err, ErrAccountNotFound):
		return "NotFound"
	default:
		return "StorageUnavailable"
	}
}
