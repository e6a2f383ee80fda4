package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration, populated from environment variables.
// Command-line flags may override individual fields after loading.
type Config struct {
	// UsersDBPath is the SQLite file holding registered user records
	UsersDBPath string `env:"POKEAUTH_USERS_DB" envDefault:"pokeauth-users.db"`

	// SessionDBPath is the BoltDB file holding the device session
	SessionDBPath string `env:"POKEAUTH_SESSION_DB" envDefault:"pokeauth-session.db"`

	// TokenSecret signs the profile access tokens. The default is only
	// suitable for a single-device local store; override it when tokens
	// are presented to any other party.
	TokenSecret string `env:"POKEAUTH_TOKEN_SECRET" envDefault:"pokeauth-local-dev-secret"`

	// AccessTokenTTL is the lifetime of minted access tokens
	AccessTokenTTL time.Duration `env:"POKEAUTH_TOKEN_TTL" envDefault:"24h"`
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
