package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cs := NewConfigService()

	cfg := &Config{
		Version:         1,
		Country:         "de",
		QuietIntervalMs: 450,
		UISettings: UISettings{
			ShowDifficulty: true,
			ShowVolume:     false,
		},
	}

	require.NoError(t, cs.SaveToPath(cfg, path))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cs := NewConfigService()
	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestSparseFileGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	cs := NewConfigService()
	cfg, err := cs.LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultCountry, cfg.Country)
	assert.Equal(t, DefaultQuietIntervalMs, cfg.QuietIntervalMs)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "us", cfg.Country)
	assert.Equal(t, 300, cfg.QuietIntervalMs)
	assert.True(t, cfg.UISettings.ShowVolume)
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "  secret-key  ")
	t.Setenv(EnvAPIHost, "example.p.rapidapi.com")

	creds := CredentialsFromEnv()
	assert.Equal(t, "secret-key", creds.APIKey)
	assert.Equal(t, "example.p.rapidapi.com", creds.APIHost)
	assert.False(t, creds.Missing())
	assert.NoError(t, creds.Validate())
}

func TestCredentialsHostDefault(t *testing.T) {
	t.Setenv(EnvAPIKey, "secret-key")
	t.Setenv(EnvAPIHost, "")

	creds := CredentialsFromEnv()
	assert.Equal(t, DefaultAPIHost, creds.APIHost)
}

func TestCredentialsMissingKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvAPIHost, "")

	creds := CredentialsFromEnv()
	assert.True(t, creds.Missing())
	assert.ErrorIs(t, creds.Validate(), ErrMissingAPIKey)
}
