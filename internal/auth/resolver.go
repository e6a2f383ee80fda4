package auth

import (
	"context"
	"log/slog"

	"github.com/pokemonapp/pokeauth/internal/models"
	"github.com/pokemonapp/pokeauth/internal/storage"
)

// SessionState is the result of resolving the persisted session at startup.
// LoggedIn implies a non-nil Profile.
type SessionState struct {
	Profile  *models.Profile
	LoggedIn bool
}

// Resolver determines the session state once per process lifetime, at app
// start. The caller routes to the login or home surface based on the result;
// the resolver itself has no presentation dependency.
type Resolver struct {
	sessions storage.SessionStorage
	logger   *slog.Logger
}

// NewResolver creates a new session resolver.
// A nil logger falls back to slog.Default().
func NewResolver(sessions storage.SessionStorage, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		sessions: sessions,
		logger:   logger,
	}
}

// Resolve reads the session store and reports whether a user is logged in.
// Storage failures resolve to logged-out rather than propagating: a broken
// session database should land the user on the login screen, not crash
// the app before the first frame.
func (r *Resolver) Resolve(ctx context.Context) SessionState {
	valid, err := r.sessions.HasValidSession(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "session check failed", slog.Any("error", err))
		return SessionState{}
	}
	if !valid {
		return SessionState{}
	}

	profile, err := r.sessions.GetCachedUser(ctx)
	if err != nil {
		// HasValidSession just confirmed the profile decodes; a miss here
		// means the session changed underneath us. Treat as logged out.
		r.logger.WarnContext(ctx, "cached user disappeared during resolve", slog.Any("error", err))
		return SessionState{}
	}

	return SessionState{LoggedIn: true, Profile: profile}
}
