package stats

import (
	"context"
	"errors"

	"vacstats/internal/ports"
	"vacstats/internal/types"
)

// Fetcher is the read path. It does not parse the stored document; the
// bytes pass through verbatim so the transport can return them as-is.
type Fetcher struct {
	Store ports.BlobStore
	Key   string
}

func NewFetcher(store ports.BlobStore, key string) *Fetcher {
	return &Fetcher{Store: store, Key: key}
}

// Fetch returns the raw stored document. An absent document surfaces as
// types.ErrNotFound; any other storage failure as types.ErrStorageAccess.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	b, err := f.Store.Get(ctx, f.Key)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, err
		}
		return nil, types.Err(types.ErrStorageAccess, err, "get %s", f.Key)
	}
	return b, nil
}
