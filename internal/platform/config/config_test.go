package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "IS_PRODUCTION", "LOG_LEVEL", "ENABLE_WRITE_API", "ENABLE_METRICS", "RATE_LIMIT", "CORS_ALLOWED_ORIGINS", "DEFAULT_COUNTRY"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.EnableWriteAPI)
	assert.True(t, cfg.EnableMetrics)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, "IN", cfg.DefaultCountry)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.True(t, cfg.AllowAllOrigins())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENABLE_WRITE_API", "true")
	t.Setenv("ENABLE_METRICS", "false")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DEFAULT_COUNTRY", " us ")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.EnableWriteAPI)
	assert.False(t, cfg.EnableMetrics)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, "US", cfg.DefaultCountry)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.False(t, cfg.AllowAllOrigins())
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Run("log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "chatty")
		t.Setenv("RATE_LIMIT", "300-M")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "LOG_LEVEL")
	})

	t.Run("rate limit", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "info")
		t.Setenv("RATE_LIMIT", "lots")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "RATE_LIMIT")
	})
}
