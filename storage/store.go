// Package storage is the persistence boundary for user-owned JSON state
// (preferences, watchlist, progress). Core logic never touches it directly;
// controllers load a blob, work on plain values, and save the result back.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no blob exists under the key.
var ErrNotFound = errors.New("storage: key not found")

// Store loads and saves JSON blobs by key. Implementations must be safe for
// concurrent use.
type Store interface {
	// Load unmarshals the blob at key into dest. Returns ErrNotFound when
	// the key has never been saved.
	Load(ctx context.Context, key string, dest interface{}) error
	// Save marshals value and writes it under key. A zero ttl means the
	// blob never expires.
	Save(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Delete removes the blob. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Well-known key builders. One blob per user per concern.

func PreferencesKey(userID string) string { return "user:" + userID + ":preferences" }
func WatchlistKey(userID string) string   { return "user:" + userID + ":watchlist" }
func ProgressKey(userID string) string    { return "user:" + userID + ":progress" }
