package stats

import (
	"vacstats/internal/types"

	json "github.com/goccy/go-json"
)

// Document is the full per-day stats history. Order is not significant;
// uniqueness by date is the only structural invariant.
type Document []types.VacancyStat

// Parse decodes stored bytes and checks the schema: valid ISO dates,
// non-negative counts, no duplicate dates. Anything else is reported as
// types.ErrCorruptDocument rather than silently treated as empty.
func Parse(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, types.Err(types.ErrCorruptDocument, err, "stored document is not valid JSON")
	}
	seen := make(map[string]struct{}, len(doc))
	for i, rec := range doc {
		if err := rec.Validate(); err != nil {
			return nil, types.Err(types.ErrCorruptDocument, err, "record %d", i)
		}
		if _, dup := seen[rec.Date]; dup {
			return nil, types.Err(types.ErrCorruptDocument, nil, "duplicate record for date %s", rec.Date)
		}
		seen[rec.Date] = struct{}{}
	}
	return doc, nil
}

// Serialize renders the document as pretty-printed JSON for storage.
// An empty document serializes as an empty array, never null.
func (d Document) Serialize() ([]byte, error) {
	if d == nil {
		d = Document{}
	}
	return json.MarshalIndent(d, "", "  ")
}

// Upsert sets count for date: replaces the existing record in place if one
// exists, appends a new one otherwise. Idempotent for a given (date, count).
func (d Document) Upsert(date string, count int) Document {
	for i := range d {
		if d[i].Date == date {
			d[i].VacanciesCount = count
			return d
		}
	}
	return append(d, types.VacancyStat{Date: date, VacanciesCount: count})
}

// Lookup returns the count recorded for date, if any.
func (d Document) Lookup(date string) (int, bool) {
	for i := range d {
		if d[i].Date == date {
			return d[i].VacanciesCount, true
		}
	}
	return 0, false
}
