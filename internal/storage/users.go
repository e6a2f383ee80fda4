package storage

import (
	"context"

	"github.com/pokemonapp/pokeauth/internal/models"
)

// UserStorage defines the interface for the durable credential store.
// Emails are stored normalized (trimmed, lowercased); callers normalize
// before querying, the store does not do case-insensitive matching itself.
type UserStorage interface {
	// RegisterUser creates a new user record with a generated ID and the
	// current timestamp, and persists it with the password hashed.
	// Returns ErrUserAlreadyExists if any record, active or inactive,
	// holds the same email. Uniqueness is enforced by the storage engine,
	// not by a check-then-insert, so concurrent registrations cannot race.
	RegisterUser(ctx context.Context, email, fullName, password string) (*models.User, error)

	// Authenticate looks up the active user with the given email and
	// verifies the password against the stored hash.
	// Returns ErrUserNotFound on any miss.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)

	// GetUserByEmail retrieves a user by normalized email regardless of
	// the active flag. Returns ErrUserNotFound if no record exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves an active user by ID.
	// Returns ErrUserNotFound if the user doesn't exist or is deactivated.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// DeactivateUser clears the active flag. The record is never
	// physically deleted and its email stays reserved.
	// Returns ErrUserNotFound if no active user has this ID.
	DeactivateUser(ctx context.Context, userID string) error
}
