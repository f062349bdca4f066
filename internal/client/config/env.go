package config

import (
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig mirrors Config for environment parsing. Zero values mean the
// variable was not set and the earlier layer's value stands.
type envConfig struct {
	APIBaseURL  string        `env:"STOREFRONT_API_URL"`
	HTTPTimeout time.Duration `env:"STOREFRONT_HTTP_TIMEOUT"`
	DatabaseDSN string        `env:"STOREFRONT_DATABASE_DSN"`
	LogFormat   string        `env:"STOREFRONT_LOG_FORMAT"`
	LogLevel    string        `env:"STOREFRONT_LOG_LEVEL"`
}

var dotenvOnce sync.Once

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded once per process if present; a missing
// file is fine.
func parseEnv(cfg *Config) {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.HTTPTimeout != 0 {
		cfg.HTTPTimeout = ec.HTTPTimeout
	}
	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
	if ec.LogFormat != "" {
		cfg.LogFormat = ec.LogFormat
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
