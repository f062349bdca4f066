package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverridesOnlySetVariables(t *testing.T) {
	t.Setenv("STOREFRONT_API_URL", "http://env.example:7000")
	t.Setenv("STOREFRONT_HTTP_TIMEOUT", "20s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://env.example:7000", cfg.APIBaseURL)
	assert.Equal(t, 20*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "storefront.db", cfg.DatabaseDSN, "unset variables keep earlier values")
}

func TestParseEnv_NothingSetKeepsDefaults(t *testing.T) {
	t.Setenv("STOREFRONT_API_URL", "")
	t.Setenv("STOREFRONT_HTTP_TIMEOUT", "")
	t.Setenv("STOREFRONT_DATABASE_DSN", "")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}
