package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Blank out ambient settings so the test sees pure defaults.
	for _, key := range []string{
		"TESSLOCATE_CONFIG", "TESSLOCATE_FOOTPRINT_URL", "TESSLOCATE_CACHE_DIR",
		"TESSLOCATE_WORKERS", "TESSLOCATE_HTTP_TIMEOUT",
		"LOG_LEVEL", "LOG_FORMAT", "METRICS_ADDR",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, defaultFootprintURL, cfg.FootprintURL)
	assert.Empty(t, cfg.CacheDir)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, 60*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TESSLOCATE_FOOTPRINT_URL", "http://example.test/cache.json")
	t.Setenv("TESSLOCATE_WORKERS", "8")
	t.Setenv("TESSLOCATE_HTTP_TIMEOUT", "15s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_ADDR", ":9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://example.test/cache.json", cfg.FootprintURL)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tesslocate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"workers: 4\nlog_format: json\nfootprint_url: http://example.test/f.json\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "http://example.test/f.json", cfg.FootprintURL)
}

func TestEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tesslocate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 4\n"), 0o644))
	t.Setenv("TESSLOCATE_WORKERS", "12")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Workers)
}

func TestLoadErrors(t *testing.T) {
	t.Run("bad worker count", func(t *testing.T) {
		t.Setenv("TESSLOCATE_WORKERS", "-1")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("TESSLOCATE_HTTP_TIMEOUT", "soon")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("bad log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
