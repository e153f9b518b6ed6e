// Package hh queries the hh.ru recruiting API for vacancy counts.
package hh

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vacstats/internal/types"

	json "github.com/goccy/go-json"
	"github.com/jmespath/go-jmespath"
)

// maxResponseBytes caps the upstream body read; the counter only needs the
// envelope around the hit count, not the vacancy listings themselves.
const maxResponseBytes = 4 << 20

type Client struct {
	cfg types.CounterConfig
	cli *http.Client
}

// NewClient validates cfg (after filling defaults) and builds a counter
// with a bounded request timeout.
func NewClient(cfg types.CounterConfig) (*Client, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, types.Err(types.ErrInvalidConfig, err, "counter config")
	}
	return &Client{
		cfg: cfg,
		cli: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}, nil
}

// Config returns the effective configuration the client runs with.
func (c *Client) Config() types.CounterConfig {
	return c.cfg
}

// Count runs the configured search and returns the total hit count, read
// from the first results page via the configured JMESPath expression.
func (c *Client) Count(ctx context.Context) (int, error) {
	q := url.Values{}
	q.Set("text", c.cfg.Query)
	q.Set("per_page", strconv.Itoa(c.cfg.PerPage))
	if c.cfg.RemoteOnly {
		q.Set("schedule", "remote")
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/vacancies?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, types.Err(types.ErrUpstream, err, "build request")
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.cli.Do(req)
	if err != nil {
		return 0, types.Err(types.ErrUpstream, err, "GET %s", endpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, types.Err(types.ErrUpstream, nil, "unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, types.Err(types.ErrUpstream, err, "read response body")
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, types.Err(types.ErrUpstream, err, "response is not valid JSON")
	}

	v, err := jmespath.Search(c.cfg.CountExpr, payload)
	if err != nil {
		return 0, types.Err(types.ErrUpstream, err, "jmespath %q", c.cfg.CountExpr)
	}
	count, ok := asCount(v)
	if !ok {
		return 0, types.Err(types.ErrUpstream, nil, "response has no integer %q field", c.cfg.CountExpr)
	}
	return count, nil
}

// asCount coerces a decoded JSON value into a non-negative integer count.
func asCount(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		if t != float64(int(t)) || t < 0 {
			return 0, false
		}
		return int(t), true
	case int:
		if t < 0 {
			return 0, false
		}
		return t, true
	case json.Number:
		n, err := t.Int64()
		if err != nil || n < 0 {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
