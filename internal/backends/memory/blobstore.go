// Package memory holds blobs in-process, for tests and local development.
package memory

import (
	"context"
	"sync"

	"vacstats/internal/types"
)

// BlobStore implements ports.BlobStore on a mutex-guarded map.
type BlobStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewBlobStore() *BlobStore {
	return &BlobStore{data: make(map[string][]byte)}
}

func (s *BlobStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.data[key]
	if !ok {
		return nil, types.Err(types.ErrNotFound, nil, "memory key %s", key)
	}
	return append([]byte(nil), b...), nil
}

func (s *BlobStore) Put(_ context.Context, key string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...)
	return nil
}
