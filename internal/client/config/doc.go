// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), with an optional .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      HTTP request timeout (seconds)
//	-d string   sqlite DSN of the local store
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8080",
//	  "http_timeout": "15s",
//	  "database_dsn": "storefront.db"
//	}
//
// Environment variables
//
//	STOREFRONT_API_URL, STOREFRONT_HTTP_TIMEOUT, STOREFRONT_DATABASE_DSN,
//	STOREFRONT_LOG_FORMAT, STOREFRONT_LOG_LEVEL
package config
