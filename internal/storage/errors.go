package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that no active user matched the lookup.
	// For Authenticate this covers unknown email, wrong password and
	// deactivated accounts alike; callers must not distinguish them.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that a user with this email already
	// exists, active or not
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrSessionNotFound indicates that no usable session data exists
	ErrSessionNotFound = errors.New("session data not found")
)
