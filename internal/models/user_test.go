package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Profile(t *testing.T) {
	user := &User{
		ID:           "user-id-123",
		Email:        "ash@pallet.town",
		FullName:     "Ash Ketchum",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    time.Date(2025, 8, 6, 10, 30, 0, 0, time.UTC),
		IsActive:     true,
	}

	profile := user.Profile()
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, user.Email, profile.Email)
	assert.Equal(t, user.FullName, profile.FullName)
	assert.True(t, user.CreatedAt.Equal(profile.CreatedAt))
	assert.Empty(t, profile.AccessToken)
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	user := &User{
		ID:           "user-id-123",
		Email:        "ash@pallet.town",
		PasswordHash: "$2a$10$secret",
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
}

func TestProfile_JSONTimestampsAreRFC3339(t *testing.T) {
	profile := &Profile{
		ID:        "user-id-123",
		Email:     "ash@pallet.town",
		FullName:  "Ash Ketchum",
		CreatedAt: time.Date(2025, 8, 6, 10, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"created_at":"2025-08-06T10:30:00Z"`)

	// The access token is omitted when empty
	assert.NotContains(t, string(data), "access_token")

	var got Profile
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, profile.CreatedAt.Equal(got.CreatedAt))
}

func TestProfile_Initials(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		want     string
	}{
		{name: "first and last", fullName: "Ash Ketchum", want: "AK"},
		{name: "single name", fullName: "Misty", want: "M"},
		{name: "three names", fullName: "Samuel Westwood Oak", want: "SO"},
		{name: "lowercase input", fullName: "ash ketchum", want: "AK"},
		{name: "empty", fullName: "", want: ""},
		{name: "whitespace only", fullName: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Profile{FullName: tt.fullName}
			assert.Equal(t, tt.want, p.Initials())
		})
	}
}

func TestProfile_InitialsMultibyte(t *testing.T) {
	p := &Profile{FullName: "ólafur jónsson"}
	assert.Equal(t, "ÓJ", p.Initials())
}
