package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
server:
  host: "127.0.0.1"
  port: 8080
store:
  path: "data/data.json"
  seed: true
admin:
  email: "admin@rentalhq.com"
  password_hash: "$2a$10$abcdefghijklmnopqrstuv"
session:
  secret: "0123456789abcdef0123456789abcdef"
ai:
  base_url: "https://api.example.com/v1"
  model: "gpt-4o-mini"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
	assert.Equal(t, "data/data.json", cfg.Store.Path)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, "admin@rentalhq.com", cfg.Admin.Email)

	// Optional sections fall back to defaults.
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 60, cfg.Session.ExpiryMinutes)
	assert.Equal(t, 5, cfg.OTP.TTLMinutes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_PATH", "/tmp/other.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/other.json", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server:  ServerConfig{Port: 8080},
			Store:   StoreConfig{Path: "data.json"},
			Admin:   AdminConfig{Email: "admin@rentalhq.com", PasswordHash: "hash"},
			Session: SessionConfig{Secret: "0123456789abcdef0123456789abcdef"},
		}
	}

	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Store.Path = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Admin.PasswordHash = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Session.Secret = "short"
	assert.Error(t, cfg.Validate())
}
