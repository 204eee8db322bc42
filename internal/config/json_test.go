package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"api": {
			"public_url": "https://ats.example.com/api/v1",
			"default_url": "http://localhost:9000/api/v1",
			"timeout": "15s",
			"production_domains": [".example.app"],
			"local_hosts": ["api", "backend"]
		},
		"gateway": {
			"runtime": "server",
			"login_path": "/signin",
			"redirect_delay": "250ms",
			"session_retries": 4,
			"strict_reads": true
		},
		"session": { "profile": "work", "endpoint": "http://localhost:3001/api/auth/session" },
		"storage": {
			"db": { "dsn": "/tmp/sessions.db" },
			"redis": { "address": "127.0.0.1:6379", "db": 2 }
		},
		"workers": { "refresh_interval": 30000000000 },
		"log": { "level": "debug" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://ats.example.com/api/v1", cfg.API.PublicURL)
	assert.Equal(t, "http://localhost:9000/api/v1", cfg.API.DefaultURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, []string{".example.app"}, cfg.API.ProductionDomains)
	assert.Equal(t, []string{"api", "backend"}, cfg.API.LocalHosts)

	assert.Equal(t, RuntimeServer, cfg.Gateway.Runtime)
	assert.Equal(t, "/signin", cfg.Gateway.LoginPath)
	assert.Equal(t, 250*time.Millisecond, cfg.Gateway.RedirectDelay)
	assert.Equal(t, 4, cfg.Gateway.SessionRetries)
	assert.True(t, cfg.Gateway.StrictReads)

	assert.Equal(t, "work", cfg.Session.Profile)
	assert.Equal(t, "http://localhost:3001/api/auth/session", cfg.Session.Endpoint)

	assert.Equal(t, "/tmp/sessions.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)

	assert.Equal(t, 30*time.Second, cfg.Workers.RefreshInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"api": {"timeout": "not-a-duration"}}`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

func TestDuration_UnmarshalJSON_RejectsBool(t *testing.T) {
	var d Duration
	assert.Error(t, d.UnmarshalJSON([]byte("true")))
}
