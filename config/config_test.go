package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"HOST", "PORT", "SHUTDOWN_TIMEOUT", "TOPOLOGY_PATH", "TOPOLOGY_RELOAD_SCHEDULE",
	"CORS_ALLOW_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	"SERVICE_NAME", "APP_ENV", "LOG_LEVEL", "APP_VERSION",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.Addr())
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sample/simple.yml", cfg.Topology.Path)
	assert.Empty(t, cfg.Topology.ReloadSchedule)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowOrigins)
	assert.Equal(t, 0.0, cfg.HTTP.RateLimitRPS)
	assert.Equal(t, 20, cfg.HTTP.RateLimitBurst)
	assert.Equal(t, "observatory", cfg.App.ServiceName)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9000")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("TOPOLOGY_PATH", "/etc/observatory/regions.yml")
	t.Setenv("TOPOLOGY_RELOAD_SCHEDULE", " @every 30s ")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/etc/observatory/regions.yml", cfg.Topology.Path)
	assert.Equal(t, "@every 30s", cfg.Topology.ReloadSchedule)
	assert.Equal(t, []string{"http://a.example", "https://b.example"}, cfg.HTTP.CORSAllowOrigins)
	assert.Equal(t, 2.5, cfg.HTTP.RateLimitRPS)
	assert.Equal(t, 20, cfg.HTTP.RateLimitBurst, "invalid integers fall back to the default")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Host: "127.0.0.1", Port: "8081"},
			Topology: TopologyConfig{Path: "sample/simple.yml"},
			HTTP:     HTTPConfig{CORSAllowOrigins: []string{"*"}, RateLimitBurst: 20},
			App:      AppConfig{LogLevel: "info"},
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing port", func(c *Config) { c.Server.Port = "" }, "PORT is required"},
		{"missing path", func(c *Config) { c.Topology.Path = "" }, "TOPOLOGY_PATH is required"},
		{"bad level", func(c *Config) { c.App.LogLevel = "loud" }, "LOG_LEVEL"},
		{"negative rps", func(c *Config) { c.HTTP.RateLimitRPS = -1 }, "RATE_LIMIT_RPS"},
		{"negative burst", func(c *Config) { c.HTTP.RateLimitBurst = -1 }, "RATE_LIMIT_BURST"},
		{"bad origin", func(c *Config) { c.HTTP.CORSAllowOrigins = []string{"dashboard.example"} }, "invalid origin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
