package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags set",
			args: []string{"cmd", "-a", "http://api.example:9090", "-t", "30", "-d", "alt.db"},
			expected: &Config{
				APIBaseURL:  "http://api.example:9090",
				HTTPTimeout: 30 * time.Second,
				DatabaseDSN: "alt.db",
			},
		},
		{
			name: "unset flags keep earlier values",
			args: []string{"cmd", "-a", "http://api.example:9090"},
			expected: &Config{
				APIBaseURL:  "http://api.example:9090",
				HTTPTimeout: 15 * time.Second,
				DatabaseDSN: "storefront.db",
			},
		},
		{
			name:        "non-numeric timeout panics",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			config.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected.APIBaseURL, config.APIBaseURL)
			assert.Equal(t, tt.expected.HTTPTimeout, config.HTTPTimeout)
			assert.Equal(t, tt.expected.DatabaseDSN, config.DatabaseDSN)
		})
	}
}
