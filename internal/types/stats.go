package types

import (
	"fmt"
	"time"
)

// DateLayout is the day-granular ISO-8601 form used for VacancyStat.Date.
const DateLayout = "2006-01-02"

// DefaultObjectKey is the blob key the stats document lives under.
const DefaultObjectKey = "vacancies_stats.json"

// VacancyStat is one per-day data point in the stats document.
// Date is the natural key; at most one record per date may exist.
type VacancyStat struct {
	Date           string `json:"date" dynamodbav:"date"`
	VacanciesCount int    `json:"vacanciesCount" dynamodbav:"vacancies_count"`
}

func (v VacancyStat) Validate() error {
	if _, err := time.Parse(DateLayout, v.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", v.Date, err)
	}
	if v.VacanciesCount < 0 {
		return fmt.Errorf("vacanciesCount must be non-negative, got %d", v.VacanciesCount)
	}
	return nil
}

// DateOf truncates t to its UTC calendar date in DateLayout form.
func DateOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
