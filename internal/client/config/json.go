package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/CaioNunes1/ecommerce-front/internal/flagx"
	"github.com/CaioNunes1/ecommerce-front/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	APIBaseURL  string         `json:"api_base_url"`
	HTTPTimeout timex.Duration `json:"http_timeout"`
	DatabaseDSN string         `json:"database_dsn"`
	LogFormat   string         `json:"log_format"`
	LogLevel    string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file located via
// the -c/-config flags. When no file is configured the Config is left
// untouched. Read or unmarshal errors panic; config problems should stop
// startup rather than run with half-applied settings.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
