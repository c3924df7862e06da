package common

import "errors"

var (
	// repository specific errors
	ErrNotFound = errors.New("not found")

	// service specific errors
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// lookbook-specific errors
	ErrUnknownDisplayID = errors.New("unknown display identifier")

	ErrInvalidToken = errors.New("invalid token")
)
