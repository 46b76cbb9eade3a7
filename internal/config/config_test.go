package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ARTWORKS_CONFIG", "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "https://api.artic.edu/api/v1", cfg.Catalog.BaseURL)
	require.Equal(t, 30*time.Second, cfg.Catalog.Timeout)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Log.File)
	require.Empty(t, cfg.Metrics.Addr)
	require.Equal(t, "Table Data", cfg.UI.Title)
	require.True(t, cfg.UI.ShowHelp)
	require.Equal(t, 32, cfg.UI.TitleWidth)
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "artworks.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[catalog]
base_url = "http://localhost:9999/api"
timeout = "5s"

[log]
level = "debug"
file = "/tmp/artworks.log"

[ui]
show_help = false
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9999/api", cfg.Catalog.BaseURL)
	require.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/tmp/artworks.log", cfg.Log.File)
	require.False(t, cfg.UI.ShowHelp)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("ARTWORKS_CATALOG_BASE_URL", "http://env.example/api")
	t.Setenv("ARTWORKS_METRICS_ADDR", "127.0.0.1:9102")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "http://env.example/api", cfg.Catalog.BaseURL)
	require.Equal(t, "127.0.0.1:9102", cfg.Metrics.Addr)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	good := Config{
		Catalog: CatalogConfig{BaseURL: "https://x", Timeout: time.Second},
		UI:      UIConfig{TitleWidth: 20},
	}
	require.NoError(t, good.Validate())

	bad := good
	bad.Catalog.BaseURL = " "
	require.Error(t, bad.Validate())

	bad = good
	bad.Catalog.Timeout = 0
	require.Error(t, bad.Validate())

	bad = good
	bad.UI.TitleWidth = 3
	require.Error(t, bad.Validate())
}
