package domain

import "errors"

// Storage-level errors shared by every repository implementation.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidTransition = errors.New("invalid session status transition")
)
