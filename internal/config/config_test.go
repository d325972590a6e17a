package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhands/poker"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokerhands.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, poker.RulesStandard, cfg.ParsedRules())
	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Zero(t, cfg.Workers)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
rules     = "legacy"
workers   = 4

server {
  address = ":9000"
}

store {
  backend    = "redis"
  redis_addr = "redis:6379"
  redis_db   = 2
  ttl        = "24h"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, poker.RulesLegacy, cfg.ParsedRules())
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "redis:6379", cfg.Store.RedisAddr)
	assert.Equal(t, 2, cfg.Store.RedisDB)

	ttl, err := cfg.StoreTTL()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestLoadPartialBlocks(t *testing.T) {
	cfg, err := Load(writeConfig(t, "store {\n  ttl = \"1h\"\n}\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "localhost:8080", cfg.Server.Address)
}

func TestLoadInvalidHCL(t *testing.T) {
	_, err := Load(writeConfig(t, "rules = \n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "unknown_attribute = 1\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad rules", func(c *Config) { c.Rules = "house" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"bad backend", func(c *Config) { c.Store.Backend = "postgres" }},
		{"bad ttl", func(c *Config) { c.Store.TTL = "soon" }},
		{"negative ttl", func(c *Config) { c.Store.TTL = "-1h" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
