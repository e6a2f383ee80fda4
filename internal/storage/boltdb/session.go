package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/pokemonapp/pokeauth/internal/models"
	"github.com/pokemonapp/pokeauth/internal/storage"
)

// Compile-time check that Storage implements SessionStorage
var _ storage.SessionStorage = (*Storage)(nil)

// SetSession marks the session as logged in for the given user
// and stamps the last sync time.
func (s *Storage) SetSession(ctx context.Context, userID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}
		return putSession(bucket, userID)
	})
}

// ClearSession resets the session to logged-out and removes the cached
// profile. Clearing an already-cleared session is a no-op.
func (s *Storage) ClearSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put(keyIsLoggedIn, []byte("false")); err != nil {
			return fmt.Errorf("failed to reset login flag: %w", err)
		}
		for _, key := range [][]byte{keyCurrentUserID, keyLastSyncDate, keyCurrentUser} {
			if err := bucket.Delete(key); err != nil {
				return fmt.Errorf("failed to delete session key %q: %w", key, err)
			}
		}
		return nil
	})
}

// CacheCurrentUser stores a serialized profile snapshot and sets the
// session for profile.ID in the same write transaction.
func (s *Storage) CacheCurrentUser(ctx context.Context, profile *models.Profile) error {
	if profile == nil {
		return fmt.Errorf("profile is nil")
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put(keyCurrentUser, data); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		return putSession(bucket, profile.ID)
	})
}

// GetCachedUser returns the cached profile of the logged-in user.
// A payload that fails to decode, or whose ID does not match the session's
// user ID, is treated as logged-out: the session is cleared and
// ErrSessionNotFound is returned. Corrupt cached data must never leave the
// store permanently stuck in a half-logged-in state.
func (s *Storage) GetCachedUser(ctx context.Context) (*models.Profile, error) {
	var (
		loggedIn bool
		userID   string
		payload  []byte
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		loggedIn = string(bucket.Get(keyIsLoggedIn)) == "true"
		userID = string(bucket.Get(keyCurrentUserID))
		// Bolt values are only valid inside the transaction
		if data := bucket.Get(keyCurrentUser); data != nil {
			payload = append([]byte(nil), data...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !loggedIn || payload == nil {
		return nil, storage.ErrSessionNotFound
	}

	profile := &models.Profile{}
	if err := json.Unmarshal(payload, profile); err != nil {
		if clearErr := s.ClearSession(ctx); clearErr != nil {
			return nil, fmt.Errorf("failed to clear corrupt session: %w", clearErr)
		}
		return nil, storage.ErrSessionNotFound
	}

	// Stale payload: cached profile belongs to a different user
	if profile.ID == "" || profile.ID != userID {
		if clearErr := s.ClearSession(ctx); clearErr != nil {
			return nil, fmt.Errorf("failed to clear stale session: %w", clearErr)
		}
		return nil, storage.ErrSessionNotFound
	}

	return profile, nil
}

// CurrentUserID returns the logged-in user's ID
func (s *Storage) CurrentUserID(ctx context.Context) (string, error) {
	var (
		loggedIn bool
		userID   string
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}
		loggedIn = string(bucket.Get(keyIsLoggedIn)) == "true"
		userID = string(bucket.Get(keyCurrentUserID))
		return nil
	})
	if err != nil {
		return "", err
	}

	if !loggedIn || userID == "" {
		return "", storage.ErrSessionNotFound
	}

	return userID, nil
}

// LastSyncDate returns the time the session was last written
func (s *Storage) LastSyncDate(ctx context.Context) (time.Time, error) {
	var raw string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}
		raw = string(bucket.Get(keyLastSyncDate))
		return nil
	})
	if err != nil {
		return time.Time{}, err
	}

	if raw == "" {
		return time.Time{}, storage.ErrSessionNotFound
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse last sync date: %w", err)
	}

	return ts, nil
}

// HasValidSession reports whether the session is logged in and a decodable
// cached profile exists.
func (s *Storage) HasValidSession(ctx context.Context) (bool, error) {
	_, err := s.GetCachedUser(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// putSession writes the logged-in flag, user ID and sync timestamp.
// Must be called inside an update transaction on the session bucket.
func putSession(bucket *bbolt.Bucket, userID string) error {
	if err := bucket.Put(keyIsLoggedIn, []byte("true")); err != nil {
		return fmt.Errorf("failed to set login flag: %w", err)
	}
	if err := bucket.Put(keyCurrentUserID, []byte(userID)); err != nil {
		return fmt.Errorf("failed to set current user id: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if err := bucket.Put(keyLastSyncDate, []byte(now)); err != nil {
		return fmt.Errorf("failed to set last sync date: %w", err)
	}
	return nil
}
