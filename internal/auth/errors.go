package auth

import "errors"

// Auth errors surfaced to the presentation layer. Validation and conflict
// errors propagate distinctly; storage failures are normalized to
// ErrRegistrationFailed/ErrLoginFailed at the service boundary so callers
// never see storage internals. Messages are user-facing.
var (
	// ErrInvalidEmail indicates a missing or malformed email address
	ErrInvalidEmail = errors.New("please enter a valid email address")

	// ErrWeakPassword indicates a password shorter than the minimum length
	ErrWeakPassword = errors.New("password must be at least 6 characters")

	// ErrInvalidFullName indicates an empty full name
	ErrInvalidFullName = errors.New("full name cannot be empty")

	// ErrUserAlreadyExists indicates a registration conflict on the email
	ErrUserAlreadyExists = errors.New("user with this email already exists")

	// ErrInvalidCredentials indicates a login miss. Unknown email, wrong
	// password and deactivated accounts collapse into this one signal.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrRegistrationFailed wraps unexpected storage failures during registration
	ErrRegistrationFailed = errors.New("registration failed, please try again")

	// ErrLoginFailed wraps unexpected storage failures during login
	ErrLoginFailed = errors.New("login failed, please try again")

	// ErrNotLoggedIn indicates that no user session is active
	ErrNotLoggedIn = errors.New("not logged in")
)
