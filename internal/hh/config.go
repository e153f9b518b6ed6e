package hh

import (
	"os"
	"strconv"

	"vacstats/internal/types"

	"github.com/goccy/go-yaml"
)

const (
	ConfigFileEnvKey = "COUNTER_CONFIG_FILE"

	BaseURLEnvKey    = "HH_BASE_URL"
	QueryEnvKey      = "HH_QUERY"
	RemoteOnlyEnvKey = "HH_REMOTE_ONLY"
	PerPageEnvKey    = "HH_PER_PAGE"
	UserAgentEnvKey  = "HH_USER_AGENT"
	CountExprEnvKey  = "HH_COUNT_EXPR"
	TimeoutEnvKey    = "HH_TIMEOUT_SECONDS"
)

// ConfigFromEnv builds the counter config from HH_* environment variables,
// optionally seeded from a YAML file named by COUNTER_CONFIG_FILE. Env vars
// win over the file; unset fields fall back to defaults.
func ConfigFromEnv() (types.CounterConfig, error) {
	var cfg types.CounterConfig
	if path := os.Getenv(ConfigFileEnvKey); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, types.Err(types.ErrInvalidConfig, err, "read %s", path)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, types.Err(types.ErrInvalidConfig, err, "parse %s", path)
		}
	}

	if v := os.Getenv(BaseURLEnvKey); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(QueryEnvKey); v != "" {
		cfg.Query = v
	}
	if v := os.Getenv(RemoteOnlyEnvKey); v != "" {
		cfg.RemoteOnly = parseBoolean(v)
	}
	if v := os.Getenv(PerPageEnvKey); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, types.Err(types.ErrInvalidConfig, err, "invalid %s", PerPageEnvKey)
		}
		cfg.PerPage = n
	}
	if v := os.Getenv(UserAgentEnvKey); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv(CountExprEnvKey); v != "" {
		cfg.CountExpr = v
	}
	if v := os.Getenv(TimeoutEnvKey); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, types.Err(types.ErrInvalidConfig, err, "invalid %s", TimeoutEnvKey)
		}
		cfg.TimeoutSeconds = n
	}
	return cfg.WithDefaults(), nil
}

func parseBoolean(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}
