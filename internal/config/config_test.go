package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.True(t, cfg.AuthEnabled)
	assert.Empty(t, cfg.RedisHost)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("AUTH_ENABLED", "false")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.False(t, cfg.AuthEnabled)
}

func TestLoad_InvalidBoolFallsBack(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "maybe")

	cfg := Load()

	assert.True(t, cfg.AuthEnabled)
}
