package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pokemonapp/pokeauth/internal/models"
	"github.com/pokemonapp/pokeauth/internal/storage"
	"github.com/pokemonapp/pokeauth/internal/validation"
)

// Service orchestrates registration and login against the credential store
// and keeps the session store in sync on success. It holds no mutable state
// beyond the stores, so the operations are independently invokable.
type Service struct {
	users    storage.UserStorage
	sessions storage.SessionStorage
	logger   *slog.Logger
	tokens   TokenConfig
}

// NewService creates a new auth service.
// A nil logger falls back to slog.Default().
func NewService(users storage.UserStorage, sessions storage.SessionStorage, tokens TokenConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register validates the input, creates the user and opens a session.
// Validation runs in a fixed order so error messages are deterministic:
// empty email, email format, empty full name, password strength.
// The returned profile never includes the password.
func (s *Service) Register(ctx context.Context, email, fullName, password string) (*models.Profile, error) {
	email = validation.NormalizeEmail(email)
	fullName = validation.NormalizeName(fullName)

	if email == "" {
		return nil, ErrInvalidEmail
	}
	if !validation.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if fullName == "" {
		return nil, ErrInvalidFullName
	}
	if !validation.IsValidPassword(password) {
		return nil, ErrWeakPassword
	}

	user, err := s.users.RegisterUser(ctx, email, fullName, password)
	if err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		s.logger.ErrorContext(ctx, "registration storage failure",
			slog.String("email", email), slog.Any("error", err))
		return nil, ErrRegistrationFailed
	}

	profile, err := s.openSession(ctx, user)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to open session after registration",
			slog.String("user_id", user.ID), slog.Any("error", err))
		return nil, ErrRegistrationFailed
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID), slog.String("email", user.Email))

	return profile, nil
}

// Login authenticates the user and opens a session.
// Only emptiness is validated up front: unlike Register, the email format
// is not re-checked here, the credential lookup decides.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Profile, error) {
	email = validation.NormalizeEmail(email)

	if email == "" {
		return nil, ErrInvalidEmail
	}
	if password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.ErrorContext(ctx, "login storage failure",
			slog.String("email", email), slog.Any("error", err))
		return nil, ErrLoginFailed
	}

	profile, err := s.openSession(ctx, user)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to open session after login",
			slog.String("user_id", user.ID), slog.Any("error", err))
		return nil, ErrLoginFailed
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))

	return profile, nil
}

// Logout clears the session unconditionally. Logging out with no active
// session is not an error, so calling it twice in a row always succeeds.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged out")

	return nil
}

// CurrentUser resolves the session's user against the credential store.
// Returns ErrNotLoggedIn if no session is active or the account has been
// deactivated since the session was written.
func (s *Service) CurrentUser(ctx context.Context) (*models.User, error) {
	userID, err := s.sessions.CurrentUserID(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrNotLoggedIn
		}
		s.logger.ErrorContext(ctx, "failed to resolve current user",
			slog.String("user_id", userID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	return user, nil
}

// openSession mints an access token and caches the profile, which also
// marks the session as logged in for profile.ID.
func (s *Service) openSession(ctx context.Context, user *models.User) (*models.Profile, error) {
	profile := user.Profile()

	token, err := GenerateAccessToken(s.tokens, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	profile.AccessToken = token

	if err := s.sessions.CacheCurrentUser(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to cache current user: %w", err)
	}

	return profile, nil
}
