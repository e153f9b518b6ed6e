package stats

import (
	"context"
	"errors"

	"vacstats/internal/types"

	json "github.com/goccy/go-json"
)

func (s *UnitTestSuite) TestUpdateCreatesDocumentWhenAbsent() {
	u, store := s.newUpdater("2024-01-02", stubCounter{count: 7})

	count, err := u.Update(context.Background())
	s.NoError(err)
	s.Equal(7, count)
	s.Equal(Document{{Date: "2024-01-02", VacanciesCount: 7}}, s.stored(store))
}

func (s *UnitTestSuite) TestUpdateAppendsNewDay() {
	u, store := s.newUpdater("2024-01-02", stubCounter{count: 7})
	s.seed(store, Document{{Date: "2024-01-01", VacanciesCount: 5}})

	count, err := u.Update(context.Background())
	s.NoError(err)
	s.Equal(7, count)
	s.ElementsMatch(Document{
		{Date: "2024-01-01", VacanciesCount: 5},
		{Date: "2024-01-02", VacanciesCount: 7},
	}, s.stored(store))
}

func (s *UnitTestSuite) TestUpdateReplacesSameDay() {
	u, store := s.newUpdater("2024-01-02", stubCounter{count: 9})
	s.seed(store, Document{{Date: "2024-01-02", VacanciesCount: 7}})

	count, err := u.Update(context.Background())
	s.NoError(err)
	s.Equal(9, count)
	s.Equal(Document{{Date: "2024-01-02", VacanciesCount: 9}}, s.stored(store))
}

func (s *UnitTestSuite) TestUpdateUpstreamFailureLeavesStoreUntouched() {
	u, store := s.newUpdater("2024-01-02", stubCounter{err: types.Err(types.ErrUpstream, nil, "status 503")})
	before := s.seed(store, Document{{Date: "2024-01-01", VacanciesCount: 5}})

	_, err := u.Update(context.Background())
	s.ErrorIs(err, types.ErrUpstream)

	after, err := store.Get(context.Background(), testKey)
	s.NoError(err)
	s.Equal(before, after)
}

func (s *UnitTestSuite) TestUpdateWrapsUntypedCounterError() {
	u, _ := s.newUpdater("2024-01-02", stubCounter{err: errors.New("connection refused")})
	_, err := u.Update(context.Background())
	s.ErrorIs(err, types.ErrUpstream)
}

func (s *UnitTestSuite) TestUpdateStorageGetFailurePropagates() {
	u, store := s.newUpdater("2024-01-02", stubCounter{count: 7})
	u.Store = failingStore{BlobStore: store, getErr: errors.New("access denied")}

	_, err := u.Update(context.Background())
	s.ErrorIs(err, types.ErrStorageAccess)

	// must not have written anything
	_, err = store.Get(context.Background(), testKey)
	s.ErrorIs(err, types.ErrNotFound)
}

func (s *UnitTestSuite) TestUpdateCorruptDocumentSurfaces() {
	u, store := s.newUpdater("2024-01-02", stubCounter{count: 7})
	before := []byte(`{"not":"a list"}`)
	s.Require().NoError(store.Put(context.Background(), testKey, before, "application/json"))

	_, err := u.Update(context.Background())
	s.ErrorIs(err, types.ErrCorruptDocument)

	after, err := store.Get(context.Background(), testKey)
	s.NoError(err)
	s.Equal(before, after)
}

func (s *UnitTestSuite) TestUpdatePutFailure() {
	u, store := s.newUpdater("2024-01-02", stubCounter{count: 7})
	u.Store = failingStore{BlobStore: store, putErr: errors.New("quota exceeded")}

	_, err := u.Update(context.Background())
	s.ErrorIs(err, types.ErrStorageAccess)
}

func (s *UnitTestSuite) TestUpdatePublishesSavedStat() {
	u, _ := s.newUpdater("2024-01-02", stubCounter{count: 7})
	p := &recordingPub{}
	u.Pub = p
	u.TopicArn = "arn:aws:sns:us-east-1:000000000000:vacstats"

	_, err := u.Update(context.Background())
	s.NoError(err)
	s.Require().Len(p.payloads, 1)
	s.Equal(u.TopicArn, p.arn)

	var stat types.VacancyStat
	s.NoError(json.Unmarshal(p.payloads[0], &stat))
	s.Equal(types.VacancyStat{Date: "2024-01-02", VacanciesCount: 7}, stat)
}

func (s *UnitTestSuite) TestUpdatePublishFailureDoesNotFailUpdate() {
	u, store := s.newUpdater("2024-01-02", stubCounter{count: 7})
	u.Pub = &recordingPub{err: errors.New("topic gone")}
	u.TopicArn = "arn:aws:sns:us-east-1:000000000000:vacstats"

	count, err := u.Update(context.Background())
	s.NoError(err)
	s.Equal(7, count)
	s.Equal(Document{{Date: "2024-01-02", VacanciesCount: 7}}, s.stored(store))
}
