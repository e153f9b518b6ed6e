package redis

import (
	"context"
	"errors"
	"fmt"

	"vacstats/internal/types"

	"github.com/redis/go-redis/v9"
)

const blobKeyNameTemplate = "_vacstats_blob_%s"

// BlobStore implements ports.BlobStore on a Redis string value per key.
// Content type is not persisted; Redis only keeps the raw bytes.
type BlobStore struct {
	cli *redis.Client
}

func NewBlobStore(cli *redis.Client) *BlobStore {
	return &BlobStore{cli: cli}
}

func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	out := s.cli.Get(ctx, getBlobKey(key))
	if out.Err() != nil {
		if errors.Is(out.Err(), redis.Nil) {
			return nil, types.Err(types.ErrNotFound, nil, "redis key %s", getBlobKey(key))
		}
		return nil, out.Err()
	}
	return []byte(out.Val()), nil
}

func (s *BlobStore) Put(ctx context.Context, key string, data []byte, _ string) error {
	out := s.cli.Set(ctx, getBlobKey(key), data, 0)
	return out.Err()
}

func getBlobKey(key string) string {
	return fmt.Sprintf(blobKeyNameTemplate, key)
}
