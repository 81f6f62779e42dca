package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(env(nil))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "http://localhost:8000", cfg.BackendURL)
	assert.Equal(t, 12, cfg.ExpectedTools)
	assert.Equal(t, language.English, cfg.NumberLocale)
	assert.Equal(t, 30*24*time.Hour, cfg.SnapshotTTL())
	assert.Empty(t, cfg.DatabaseURL)
}

func TestParseEnv(t *testing.T) {
	cfg, err := Parse(env(map[string]string{
		KeyBackendURL:      "http://backend:9000",
		KeyBackendTimeout:  "15s",
		KeyHTTPAddr:        ":9090",
		KeyDatabaseURL:     "postgres://x",
		KeyExpectedTools:   "16",
		KeyNumberLocale:    "de",
		KeySnapshotTTLDays: "7",
		KeyLogLevel:        "debug",
		KeyPublicURL:       "https://match.example",
	}))
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000", cfg.BackendURL)
	assert.Equal(t, 15*time.Second, cfg.BackendTimeout)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres://x", cfg.DatabaseURL)
	assert.Equal(t, 16, cfg.ExpectedTools)
	assert.Equal(t, "de", cfg.NumberLocale.String())
	assert.Equal(t, 7, cfg.SnapshotTTLDays)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://match.example", cfg.PublicURL)
}

func TestParseRequired(t *testing.T) {
	_, err := Parse(env(map[string]string{KeyDiscordToken: "t"}), KeyDiscordToken, KeyDiscordGuild)
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyDiscordGuild)
	assert.NotContains(t, err.Error(), KeyDiscordToken)
}

func TestParseInvalid(t *testing.T) {
	for k, v := range map[string]string{
		KeyExpectedTools:   "0",
		KeySnapshotTTLDays: "x",
		KeyBackendTimeout:  "soon",
		KeyNumberLocale:    "!!",
	} {
		_, err := Parse(env(map[string]string{k: v}))
		assert.Error(t, err, k)
	}
}

func TestParseFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
expected_tools: 14
number_locale: es
http_addr: ":7000"
backend_url: http://file:1
`), 0o600))

	cfg, err := Parse(env(map[string]string{KeyConfigFile: path, KeyHTTPAddr: ":7001"}))
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.ExpectedTools)
	assert.Equal(t, "es", cfg.NumberLocale.String())
	assert.Equal(t, "http://file:1", cfg.BackendURL)
	assert.Equal(t, ":7001", cfg.HTTPAddr, "env wins over file")
}

func TestParseFileErrors(t *testing.T) {
	_, err := Parse(env(map[string]string{KeyConfigFile: filepath.Join(t.TempDir(), "nope.yaml")}))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("expected_tools: [1"), 0o600))
	_, err = Parse(env(map[string]string{KeyConfigFile: path}))
	assert.Error(t, err)
}
