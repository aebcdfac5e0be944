package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, SourceFixture, cfg.ListingSource)
	assert.Equal(t, 24224, cfg.FluentPort)
	assert.False(t, cfg.FluentEnabled)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LISTING_SOURCE", "Postgres")
	t.Setenv("FLUENT_ENABLED", "true")
	t.Setenv("FLUENT_PORT", "not-a-port")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, SourcePostgres, cfg.ListingSource)
	assert.True(t, cfg.FluentEnabled)
	assert.Equal(t, 24224, cfg.FluentPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadUnknownSourceFallsBack(t *testing.T) {
	t.Setenv("LISTING_SOURCE", "redis")

	cfg := Load()

	assert.Equal(t, SourceFixture, cfg.ListingSource)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], `"redis"`)
}
