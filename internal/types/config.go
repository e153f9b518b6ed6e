package types

import "fmt"

// CounterConfig drives the upstream vacancy-count query.
// Query is the full-text search sent to the recruiting API.
// RemoteOnly restricts the search to remote positions (schedule=remote).
// PerPage is the upstream page size; the counter never paginates, it only
// reads the total hit count from the first page.
// CountExpr is a JMESPath expression selecting the hit-count field in the
// upstream response body.
type CounterConfig struct {
	BaseURL        string `json:"base_url" yaml:"base_url"`
	Query          string `json:"query" yaml:"query"`
	RemoteOnly     bool   `json:"remote_only" yaml:"remote_only"`
	PerPage        int    `json:"per_page" yaml:"per_page"`
	UserAgent      string `json:"user_agent" yaml:"user_agent"`
	CountExpr      string `json:"count_expr" yaml:"count_expr"`
	TimeoutSeconds int    `json:"timeout_seconds" yaml:"timeout_seconds"`
}

const (
	DefaultBaseURL        = "https://api.hh.ru"
	DefaultQuery          = "C# Developer"
	DefaultPerPage        = 100
	DefaultUserAgent      = "vacstats/1.0"
	DefaultCountExpr      = "found"
	DefaultTimeoutSeconds = 10

	MaxPerPage = 100
)

func (c CounterConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.Query == "" {
		return fmt.Errorf("query is required")
	}
	if c.PerPage < 1 || c.PerPage > MaxPerPage {
		return fmt.Errorf("per_page must be between 1 and %d", MaxPerPage)
	}
	if c.UserAgent == "" {
		return fmt.Errorf("user_agent is required")
	}
	if c.CountExpr == "" {
		return fmt.Errorf("count_expr is required")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be non-negative. 0 for the default")
	}
	return nil
}

// WithDefaults returns a copy with zero-valued fields filled in.
func (c CounterConfig) WithDefaults() CounterConfig {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Query == "" {
		c.Query = DefaultQuery
	}
	if c.PerPage == 0 {
		c.PerPage = DefaultPerPage
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.CountExpr == "" {
		c.CountExpr = DefaultCountExpr
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return c
}
