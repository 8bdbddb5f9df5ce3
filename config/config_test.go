package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv() {
	for _, key := range []string{
		"ENV", "CI", "SERVER_PORT", "SERVER_HOST",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_URL", "MIGRATIONS_DIR",
	} {
		os.Unsetenv(key)
	}
}

func TestLoadConfig(t *testing.T) {
	clearConfigEnv()
	t.Cleanup(clearConfigEnv)

	os.Setenv("ENV", "development")
	os.Setenv("DB_HOST", "localhost")
	os.Setenv("DB_PASSWORD", "postgres")
	os.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "nutriplan", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.True(t, cfg.HasDatabase())
	assert.True(t, cfg.HasRedis())
}

func TestLoadConfigStandalone(t *testing.T) {
	clearConfigEnv()
	t.Cleanup(clearConfigEnv)

	os.Setenv("ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.False(t, cfg.HasDatabase())
	assert.False(t, cfg.HasRedis())
	assert.Equal(t, "migrations", cfg.MigrationsDir)
}

func TestGetEnvironment(t *testing.T) {
	clearConfigEnv()
	t.Cleanup(clearConfigEnv)

	os.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
	os.Unsetenv("CI")

	os.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())

	os.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	os.Unsetenv("ENV")
	assert.Equal(t, Development, GetEnvironment())
}
