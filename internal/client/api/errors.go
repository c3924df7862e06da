package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers transport failures, timeouts, and 5xx responses.
	ErrUnavailable = errors.New("server unavailable")
)

// Error is a backend-reported rejection (validation failure, not-found,
// business rule). It carries the HTTP status and the human-readable message
// from the response envelope.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: %s", e.Message)
}
