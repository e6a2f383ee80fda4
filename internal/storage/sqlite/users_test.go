package sqlite

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokemonapp/pokeauth/internal/storage"
)

// setupTestStorage creates an in-memory SQLite storage with migrations applied
func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	ctx := context.Background()
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, s)

	cleanup := func() {
		require.NoError(t, s.Close())
	}

	return s, cleanup
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user, err := s.RegisterUser(ctx, "ash@pallet.town", "Ash Ketchum", "pikachu1")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ash@pallet.town", user.Email)
	assert.Equal(t, "Ash Ketchum", user.FullName)
	assert.True(t, user.IsActive)
	assert.False(t, user.CreatedAt.IsZero())

	// The password must never be stored verbatim
	assert.NotEqual(t, "pikachu1", user.PasswordHash)
	assert.True(t, strings.HasPrefix(user.PasswordHash, "$2"))

	// Distinct registrations get distinct IDs
	other, err := s.RegisterUser(ctx, "misty@cerulean.city", "Misty", "starmie1")
	require.NoError(t, err)
	assert.NotEqual(t, user.ID, other.ID)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.RegisterUser(ctx, "ash@pallet.town", "Ash Ketchum", "pikachu1")
	require.NoError(t, err)

	_, err = s.RegisterUser(ctx, "ash@pallet.town", "Another Ash", "different1")
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestRegisterUser_DuplicateEmailOfInactiveUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user, err := s.RegisterUser(ctx, "ash@pallet.town", "Ash Ketchum", "pikachu1")
	require.NoError(t, err)
	require.NoError(t, s.DeactivateUser(ctx, user.ID))

	// The email stays reserved even after deactivation
	_, err = s.RegisterUser(ctx, "ash@pallet.town", "Ash Again", "pikachu2")
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	registered, err := s.RegisterUser(ctx, "ash@pallet.town", "Ash Ketchum", "pikachu1")
	require.NoError(t, err)

	tests := []struct {
		wantError error
		name      string
		email     string
		password  string
	}{
		{name: "valid credentials", email: "ash@pallet.town", password: "pikachu1", wantError: nil},
		{name: "wrong password", email: "ash@pallet.town", password: "pikachu2", wantError: storage.ErrUserNotFound},
		{name: "near-miss password", email: "ash@pallet.town", password: "pikachu1 ", wantError: storage.ErrUserNotFound},
		{name: "unknown email", email: "gary@pallet.town", password: "pikachu1", wantError: storage.ErrUserNotFound},
		{name: "empty password", email: "ash@pallet.town", password: "", wantError: storage.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := s.Authenticate(ctx, tt.email, tt.password)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, registered.ID, user.ID)
				assert.Equal(t, registered.Email, user.Email)
			}
		})
	}
}

func TestAuthenticate_DeactivatedUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user, err := s.RegisterUser(ctx, "ash@pallet.town", "Ash Ketchum", "pikachu1")
	require.NoError(t, err)

	_, err = s.Authenticate(ctx, "ash@pallet.town", "pikachu1")
	require.NoError(t, err)

	require.NoError(t, s.DeactivateUser(ctx, user.ID))

	// A deactivated account authenticates exactly like a missing one
	_, err = s.Authenticate(ctx, "ash@pallet.town", "pikachu1")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user, err := s.RegisterUser(ctx, "ash@pallet.town", "Ash Ketchum", "pikachu1")
	require.NoError(t, err)

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.FullName, got.FullName)

	_, err = s.GetUserByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	// Deactivated users are invisible to lookups by ID
	require.NoError(t, s.DeactivateUser(ctx, user.ID))
	_, err = s.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestGetUserByEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user, err := s.RegisterUser(ctx, "ash@pallet.town", "Ash Ketchum", "pikachu1")
	require.NoError(t, err)

	got, err := s.GetUserByEmail(ctx, "ash@pallet.town")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// Unlike GetUserByID, inactive records are still returned
	require.NoError(t, s.DeactivateUser(ctx, user.ID))
	got, err = s.GetUserByEmail(ctx, "ash@pallet.town")
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = s.GetUserByEmail(ctx, "gary@pallet.town")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestDeactivateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user, err := s.RegisterUser(ctx, "ash@pallet.town", "Ash Ketchum", "pikachu1")
	require.NoError(t, err)

	require.NoError(t, s.DeactivateUser(ctx, user.ID))

	// Already inactive
	err = s.DeactivateUser(ctx, user.ID)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	// Unknown ID
	err = s.DeactivateUser(ctx, "no-such-id")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
