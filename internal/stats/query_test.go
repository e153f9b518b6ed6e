package stats

import (
	"context"
	"errors"

	"vacstats/internal/backends/memory"
	"vacstats/internal/types"
)

func (s *UnitTestSuite) TestFetchAbsentReturnsNotFound() {
	f := NewFetcher(memory.NewBlobStore(), testKey)
	_, err := f.Fetch(context.Background())
	s.ErrorIs(err, types.ErrNotFound)
}

func (s *UnitTestSuite) TestFetchReturnsStoredBytesVerbatim() {
	store := memory.NewBlobStore()
	// deliberately not pretty-printed; the fetcher must not reformat
	raw := []byte(`[{"date":"2024-01-01","vacanciesCount":5}]`)
	s.Require().NoError(store.Put(context.Background(), testKey, raw, "application/json"))

	f := NewFetcher(store, testKey)
	got, err := f.Fetch(context.Background())
	s.NoError(err)
	s.Equal(raw, got)
}

func (s *UnitTestSuite) TestFetchStorageFailure() {
	f := NewFetcher(failingStore{BlobStore: memory.NewBlobStore(), getErr: errors.New("timeout")}, testKey)
	_, err := f.Fetch(context.Background())
	s.ErrorIs(err, types.ErrStorageAccess)
	s.NotErrorIs(err, types.ErrNotFound)
}
