package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - HTTPTimeout: per-request transport timeout.
//   - DatabaseDSN: sqlite DSN of the local durable store.
//   - LogFormat: "text" or "json".
//   - LogLevel: "debug", "info", "warn" or "error".
type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	DatabaseDSN string
	LogFormat   string
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.HTTPTimeout = 15 * time.Second
	c.DatabaseDSN = "storefront.db"
	c.LogFormat = "text"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
