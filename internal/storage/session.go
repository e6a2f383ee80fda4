package storage

import (
	"context"

	"github.com/pokemonapp/pokeauth/internal/models"
)

// SessionStorage defines the interface for the durable session record.
// There is at most one session per database; it survives process restarts.
//
// Invariant: a logged-in session always carries a current user ID, and the
// cached profile, if present, belongs to that user. Implementations repair
// any violation they observe by clearing the session rather than returning
// corrupt data.
type SessionStorage interface {
	// SetSession marks the session as logged in for the given user and
	// stamps the last sync time.
	SetSession(ctx context.Context, userID string) error

	// ClearSession resets the session to logged-out and removes the
	// cached profile. Clearing an absent session is not an error.
	ClearSession(ctx context.Context) error

	// CacheCurrentUser stores a serialized profile snapshot and sets the
	// session for profile.ID.
	CacheCurrentUser(ctx context.Context, profile *models.Profile) error

	// GetCachedUser returns the cached profile of the logged-in user.
	// Returns ErrSessionNotFound if the session is logged out or no
	// payload exists. A payload that fails to decode, or whose ID does
	// not match the session's user ID, clears the session as a side
	// effect and is reported as ErrSessionNotFound.
	GetCachedUser(ctx context.Context) (*models.Profile, error)

	// CurrentUserID returns the logged-in user's ID, or
	// ErrSessionNotFound if the session is logged out.
	CurrentUserID(ctx context.Context) (string, error)

	// HasValidSession reports whether the session is logged in and a
	// decodable cached profile exists.
	HasValidSession(ctx context.Context) (bool, error)
}
