package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Empty(t, cfg.RedisURL)
	require.Equal(t, "release", cfg.GinMode)
	require.False(t, cfg.Debug)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SECUREDOCS_LISTEN_ADDR", ":9999")
	t.Setenv("SECUREDOCS_REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("SECUREDOCS_GIN_MODE", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.ListenAddr)
	require.Equal(t, "redis://localhost:6379/1", cfg.RedisURL)
	require.Equal(t, "debug", cfg.GinMode)
}
