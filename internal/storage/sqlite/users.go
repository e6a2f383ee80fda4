package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pokemonapp/pokeauth/internal/models"
	"github.com/pokemonapp/pokeauth/internal/storage"
)

// Compile-time check that Storage implements UserStorage
var _ storage.UserStorage = (*Storage)(nil)

// RegisterUser creates and persists a new active user record.
// The password is stored as a bcrypt hash, never verbatim. The unique
// index on email maps constraint violations to ErrUserAlreadyExists.
func (s *Storage) RegisterUser(ctx context.Context, email, fullName, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}

	query := `
		INSERT INTO users (id, email, full_name, password_hash, created_at, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.CreatedAt,
		user.IsActive,
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return nil, storage.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// Authenticate looks up the active user by email and verifies the password.
// Unknown email, wrong password and deactivated accounts all collapse into
// ErrUserNotFound so callers cannot tell which part was wrong.
func (s *Storage) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.getUser(ctx, `
		SELECT id, email, full_name, password_hash, created_at, is_active
		FROM users
		WHERE email = ? AND is_active = TRUE
	`, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by normalized email, active or not
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, `
		SELECT id, email, full_name, password_hash, created_at, is_active
		FROM users
		WHERE email = ?
	`, email)
}

// GetUserByID retrieves an active user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.getUser(ctx, `
		SELECT id, email, full_name, password_hash, created_at, is_active
		FROM users
		WHERE id = ? AND is_active = TRUE
	`, userID)
}

// DeactivateUser clears the active flag without deleting the record
func (s *Storage) DeactivateUser(ctx context.Context, userID string) error {
	query := `UPDATE users SET is_active = FALSE WHERE id = ? AND is_active = TRUE`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// getUser runs a single-row user query with the given argument
func (s *Storage) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.IsActive,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
