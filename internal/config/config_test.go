package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Empty(t, cfg.SeedFile)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("SEED_FILE", "seed/books.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, "seed/books.yaml", cfg.SeedFile)
}

func TestLoadRequiresSecret(t *testing.T) {
	// t.Setenv registers the restore; unset so the variable is truly absent.
	t.Setenv("JWT_SECRET", "placeholder")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := Load()
	assert.Error(t, err)
}
