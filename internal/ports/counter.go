package ports

import "context"

// VacancyCounter returns the current number of vacancies matching its
// configured query. Any failure (transport, non-success status, missing
// count field) MUST be reported as types.ErrUpstream.
type VacancyCounter interface {
	Count(ctx context.Context) (int, error)
}
