package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStore is the in-process Store used by tests and local development
// without Redis. TTLs are honored lazily on Load.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]memoryBlob
}

type memoryBlob struct {
	raw       []byte
	expiresAt time.Time // zero means no expiry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]memoryBlob)}
}

func (s *MemoryStore) Load(ctx context.Context, key string, dest interface{}) error {
	s.mu.RLock()
	blob, ok := s.blobs[key]
	s.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	if !blob.expiresAt.IsZero() && time.Now().After(blob.expiresAt) {
		s.mu.Lock()
		delete(s.blobs, key)
		s.mu.Unlock()
		return ErrNotFound
	}
	return json.Unmarshal(blob.raw, dest)
}

func (s *MemoryStore) Save(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	blob := memoryBlob{raw: raw}
	if ttl > 0 {
		blob.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.blobs[key] = blob
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.blobs, key)
	s.mu.Unlock()
	return nil
}
