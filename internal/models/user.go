package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// User represents a registered account in the local credential store
type User struct {
	CreatedAt    time.Time `json:"created_at"`    // registration time
	ID           string    `json:"id"`            // UUID
	Email        string    `json:"email"`         // normalized email, unique key
	FullName     string    `json:"full_name"`     // display name
	PasswordHash string    `json:"-"`             // bcrypt hash, never serialized
	IsActive     bool      `json:"is_active"`     // false after deactivation (soft delete)
}

// Profile is the password-free view of a user returned by auth operations
// and cached in the session store. Timestamps serialize as RFC 3339.
type Profile struct {
	CreatedAt   time.Time `json:"created_at"`
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	AccessToken string    `json:"access_token,omitempty"`
}

// Profile returns the public view of the user.
func (u *User) Profile() *Profile {
	return &Profile{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}

// Initials returns up to two uppercase initials derived from the full name.
func (p *Profile) Initials() string {
	names := strings.Fields(p.FullName)
	if len(names) == 0 {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(names[0])
	initials := strings.ToUpper(string(first))
	if len(names) > 1 {
		last, _ := utf8.DecodeRuneInString(names[len(names)-1])
		initials += strings.ToUpper(string(last))
	}
	return initials
}
