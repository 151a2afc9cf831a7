package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "ALLOWED_ORIGIN", "DB_NAME", "DB_PORT", "DB_CONN_MAX_LIFETIME", "CACHE_TTL", "ADMIN_KEY", "EVENTS_EXCHANGE")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.ServerPort)
	assert.Equal(t, "http://localhost:3000", cfg.AllowedOrigin)
	assert.Equal(t, "sistema_reservas", cfg.DBName)
	assert.Equal(t, 3306, cfg.DBPort)
	assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, "reservas.events", cfg.EventsExchange)
	assert.False(t, cfg.AdminRegistrationEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("ADMIN_KEY", "s3cret")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("RESET_DB", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.ResetDB)
	assert.True(t, cfg.AdminRegistrationEnabled())
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

// unsetEnv clears keys for the duration of the test; envconfig treats a set but
// empty variable as a value, not as missing.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
