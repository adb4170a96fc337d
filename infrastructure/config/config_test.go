package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.View.DefaultPageSize)
	assert.Equal(t, []int{5, 10, 20, 50}, cfg.View.PageSizeOptions)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_base_url: http://graph.internal:8080
fetch_timeout_seconds: 3
log_level: debug
view:
  default_page_size: 20
  page_size_options: [10, 20]
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://graph.internal:8080", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 20, cfg.View.DefaultPageSize)
	assert.Equal(t, []int{10, 20}, cfg.View.PageSizeOptions)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://override:9999")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "http://override:9999", cfg.APIBaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "bad url", yaml: "api_base_url: not-a-url"},
		{name: "bad log level", yaml: "log_level: chatty"},
		{name: "zero timeout", yaml: "fetch_timeout_seconds: 0"},
		{name: "zero page size", yaml: "view:\n  default_page_size: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
}
