package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.History.Cap)
	assert.Nil(t, cfg.Display.Language)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[storage]
db = "/tmp/runcals.db"

[history]
cap = 50

[articles]
base-url = "http://localhost:8080"
api-key = "from-file"
stale-after = "30m"
timeout = "5s"

[display]
language = "en"
theme = "dark"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Storage.DB)
	assert.Equal(t, "/tmp/runcals.db", *cfg.Storage.DB)
	require.NotNil(t, cfg.History.Cap)
	assert.Equal(t, 50, *cfg.History.Cap)
	assert.Equal(t, "http://localhost:8080", *cfg.Articles.BaseURL)
	assert.Equal(t, 30*time.Minute, cfg.Articles.StaleAfterDuration())
	assert.Equal(t, 5*time.Second, cfg.Articles.TimeoutDuration())
	assert.Equal(t, "en", *cfg.Display.Language)
	assert.Equal(t, "dark", *cfg.Display.Theme)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	for _, body := range []string{
		"[history]\ncap = 0\n",
		"[articles]\nstale-after = \"soon\"\n",
		"[articles]\ntimeout = \"-5s\"\n",
		"[history\n",
	} {
		_, err := LoadConfig(writeConfig(t, body))
		assert.Error(t, err, "config %q", body)
	}
}

func TestUnsetDurationsAreZero(t *testing.T) {
	var cfg ArticlesConfig
	assert.Zero(t, cfg.StaleAfterDuration())
	assert.Zero(t, cfg.TimeoutDuration())
}

func TestApplyEnv(t *testing.T) {
	key := "from-file"
	cfg := FileConfig{Articles: ArticlesConfig{APIKey: &key}}

	t.Setenv(EnvAPIKey, "from-env")
	t.Setenv(EnvBaseURL, "https://example.test")
	cfg.ApplyEnv()

	assert.Equal(t, "from-env", *cfg.Articles.APIKey)
	assert.Equal(t, "https://example.test", *cfg.Articles.BaseURL)
}

func TestPathsHonourOverrides(t *testing.T) {
	data := t.TempDir()
	conf := t.TempDir()
	t.Setenv(EnvDataDir, data)
	t.Setenv(EnvConfigDir, conf)

	assert.Equal(t, filepath.Join(data, "runcals.db"), DefaultDBPath())
	assert.Equal(t, filepath.Join(conf, "config.toml"), DefaultConfigPath())
}

func TestPathsFollowXDG(t *testing.T) {
	home := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvConfigDir, "")
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	xdg.Reload()

	assert.Equal(t, filepath.Join(home, "data", "runcals", "runcals.db"), DefaultDBPath())
	assert.Equal(t, filepath.Join(home, "config", "runcals", "config.toml"), DefaultConfigPath())
}
