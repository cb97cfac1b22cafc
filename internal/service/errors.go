package service

import "errors"

// Error taxonomy shared by all services. Handlers map these to HTTP status
// codes in one place; no service retries internally.
var (
	// ErrInvalidArgument means the caller supplied bad input
	// (empty category set, unknown status, non-positive count).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnauthenticated means no valid user session or token was presented.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound means a referenced word, question or result does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPersistence means a backing-store write failed. The computed value
	// may still be returned alongside it so the caller can retry the write
	// without recomputation.
	ErrPersistence = errors.New("persistence failure")
)

// Auth-specific sentinels
var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)
