package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "SERVER_ADDRESS", "CONTENT_PATH", "RENDER_CACHE_SIZE", "METRICS_ENABLED", "SITE_BASE_URL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 4002, cfg.ServerPort)
	assert.Equal(t, "0.0.0.0:4002", cfg.Addr())
	assert.Equal(t, "", cfg.Site.ContentPath)
	assert.Equal(t, "https://innermost.com", cfg.Site.BaseURL)
	assert.Equal(t, 64, cfg.Render.CacheSize)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1")
	t.Setenv("CONTENT_PATH", "/srv/site.yaml")
	t.Setenv("RENDER_CACHE_SIZE", "0")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SERVER_READ_TIMEOUT", "2s")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, "/srv/site.yaml", cfg.Site.ContentPath)
	assert.Equal(t, 0, cfg.Render.CacheSize)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "SERVER_PORT", "http"},
		{"port out of range", "SERVER_PORT", "70000"},
		{"negative cache", "RENDER_CACHE_SIZE", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFiles_LocalOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("INNERMOST_TEST_VALUE=base\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("INNERMOST_TEST_VALUE=local\n"), 0o600))
	t.Setenv("INNERMOST_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("INNERMOST_TEST_VALUE"))

	LoadEnvFiles(dir)

	assert.Equal(t, "local", os.Getenv("INNERMOST_TEST_VALUE"))
}
