package ports

import "context"

// BlobStore is key-addressed object storage for the stats document.
// Implementations MUST return types.ErrNotFound from Get when the key does
// not exist; any other failure is an implementation-specific error.
type BlobStore interface {
	// Get returns the raw stored bytes for key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put fully overwrites the object at key. There is no conditional-write
	// support; concurrent writers race (last PUT wins).
	Put(ctx context.Context, key string, data []byte, contentType string) error
}
