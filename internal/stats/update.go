package stats

import (
	"context"
	"errors"
	"time"

	"vacstats/internal/ports"
	"vacstats/internal/types"

	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

// Updater runs the write path: fetch the upstream count, load the stored
// document, upsert today's record, persist.
//
// The load/upsert/put cycle is not transactionally isolated. Two concurrent
// updates both read the same revision and the later PUT wins, dropping the
// other writer's change. The deployment assumption is a single scheduled
// invocation per day; the blob store offers no conditional writes to do
// better.
type Updater struct {
	Store   ports.BlobStore
	Counter ports.VacancyCounter
	Key     string

	// Pub and TopicArn enable an optional saved-stat notification.
	Pub      ports.Publisher
	TopicArn string

	// Now overrides the clock in tests. Defaults to time.Now.
	Now func() time.Time
}

func NewUpdater(store ports.BlobStore, counter ports.VacancyCounter, key string) *Updater {
	return &Updater{Store: store, Counter: counter, Key: key}
}

// Update executes the protocol and returns the count it persisted.
// Failures before the PUT leave the stored document untouched; the PUT
// itself is a full overwrite, all-or-nothing from the caller's view.
func (u *Updater) Update(ctx context.Context) (int, error) {
	count, err := u.Counter.Count(ctx)
	if err != nil {
		if errors.Is(err, types.ErrUpstream) {
			return 0, err
		}
		return 0, types.Err(types.ErrUpstream, err, "")
	}
	log.WithField("count", count).Info("fetched vacancy count")

	var doc Document
	raw, err := u.Store.Get(ctx, u.Key)
	switch {
	case err == nil:
		if doc, err = Parse(raw); err != nil {
			return 0, err
		}
	case errors.Is(err, types.ErrNotFound):
		log.WithField("key", u.Key).Info("stats document does not exist yet, starting empty")
	default:
		return 0, types.Err(types.ErrStorageAccess, err, "get %s", u.Key)
	}

	// Computed once so an invocation spanning midnight stays on one date.
	today := types.DateOf(u.now())
	doc = doc.Upsert(today, count)

	out, err := doc.Serialize()
	if err != nil {
		return 0, types.Err(types.ErrCorruptDocument, err, "serialize document")
	}
	if err := u.Store.Put(ctx, u.Key, out, "application/json"); err != nil {
		return 0, types.Err(types.ErrStorageAccess, err, "put %s", u.Key)
	}
	log.WithFields(log.Fields{"key": u.Key, "date": today, "count": count}).Info("stats document saved")

	u.notify(ctx, today, count)
	return count, nil
}

func (u *Updater) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

// notify is fire-and-forget; a publish failure never fails the update.
func (u *Updater) notify(ctx context.Context, date string, count int) {
	if u.Pub == nil || u.TopicArn == "" {
		return
	}
	b, err := json.Marshal(types.VacancyStat{Date: date, VacanciesCount: count})
	if err != nil {
		return
	}
	if err := u.Pub.PublishRaw(ctx, u.TopicArn, b); err != nil {
		log.WithError(err).WithField("arn", u.TopicArn).Warn("failed to publish saved stat")
	}
}
