package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no session data exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrCartNotFound indicates that no cart record exists
	ErrCartNotFound = errors.New("cart record not found")
)
