package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deal-analyzer/internal/deal"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

func clearEnv(t *testing.T) {
	for _, k := range []string{"DEAL_API_PORT", "DEAL_ENV", "DEAL_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_PRETTY", "REDIS_ADDR", "PROPERTY_SEED_FILE", "SESSION_TTL"} {
		t.Setenv(k, "")
	}
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, deal.DefaultClosingCostMultiplier, c.Engine.ClosingCostMultiplier)
	assert.False(t, c.IsProduction())
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "properties.yaml", "properties: []\n")
	path := writeFile(t, dir, "deal.yaml", `
server:
  port: 9090
engine:
  closing_cost_multiplier: 1.05
  received_term_from_sell_leg: true
session:
  ttl: 30m
property:
  seed_file: properties.yaml
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, "development", c.Server.Env)
	assert.Equal(t, 1.05, c.Engine.ClosingCostMultiplier)
	assert.True(t, c.Engine.ReceivedTermFromSellLeg)
	assert.Equal(t, 30*time.Minute, c.Session.TTL)
	assert.Equal(t, 5*time.Minute, c.Session.SweepInterval)
	assert.Equal(t, filepath.Join(dir, "properties.yaml"), c.Property.SeedFile)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "deal.yaml", "server:\n  port: 9090\n")
	t.Setenv("DEAL_API_PORT", "7000")
	t.Setenv("DEAL_ENV", "production")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEAL_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, c.Server.Port)
	assert.True(t, c.IsProduction())
	assert.Equal(t, "localhost:6379", c.Property.RedisAddr)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.Server.AllowedOrigins)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.Server.Port = 70000 }},
		{"multiplier", func(c *Config) { c.Engine.ClosingCostMultiplier = -1 }},
		{"ttl", func(c *Config) { c.Session.TTL = -time.Second }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}

func TestLoadUncheckedErrors(t *testing.T) {
	_, err := LoadUnchecked(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := writeFile(t, t.TempDir(), "bad.yaml", "server: [")
	_, err = LoadUnchecked(bad)
	assert.Error(t, err)
}
