package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	type prefs struct {
		Persona string `json:"persona"`
	}

	err := store.Save(ctx, PreferencesKey("u1"), prefs{Persona: "Digital Nomad"}, 0)
	require.NoError(t, err)

	var got prefs
	require.NoError(t, store.Load(ctx, PreferencesKey("u1"), &got))
	assert.Equal(t, "Digital Nomad", got.Persona)

	require.NoError(t, store.Delete(ctx, PreferencesKey("u1")))
	assert.ErrorIs(t, store.Load(ctx, PreferencesKey("u1"), &got), ErrNotFound)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore()
	var dest map[string]any
	assert.ErrorIs(t, store.Load(context.Background(), "nope", &dest), ErrNotFound)

	// Deleting a missing key is fine.
	assert.NoError(t, store.Delete(context.Background(), "nope"))
}

func TestMemoryStoreTTL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, "k", 42, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	var dest int
	assert.ErrorIs(t, store.Load(ctx, "k", &dest), ErrNotFound)
}

func TestStorageKeys(t *testing.T) {
	assert.Equal(t, "user:u1:preferences", PreferencesKey("u1"))
	assert.Equal(t, "user:u1:watchlist", WatchlistKey("u1"))
	assert.Equal(t, "user:u1:progress", ProgressKey("u1"))
}
