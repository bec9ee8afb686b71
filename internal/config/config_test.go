package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnwords/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "test-token")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, config.StorageFile, cfg.Storage)
	assert.Equal(t, "test-token", cfg.TelegramAPIToken)
	assert.Equal(t, int32(10), cfg.DB.MaxConnections)
	assert.Equal(t, 30*time.Second, cfg.DB.MaxConnLifetime)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "test-token")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/learnwords")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "postgres://localhost:5432/learnwords", cfg.DB.URL)
}

func TestLoadPostgresRequiresURL(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "test-token")
	t.Setenv("STORAGE", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	require.Error(t, err)
}
