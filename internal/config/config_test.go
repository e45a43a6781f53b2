package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authkit/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "3090", cfg.Port)
	assert.Equal(t, config.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "test-secret", cfg.AuthSecret)
	assert.Equal(t, 0, cfg.TokenExpirationHours)
	assert.NotEmpty(t, cfg.ProtectedMessage)
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_URL", "postgres://localhost:5432/authkit")
	t.Setenv("TOKEN_EXPIRATION_HOURS", "24")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("PROTECTED_MESSAGE", "hello")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "postgres://localhost:5432/authkit", cfg.DBURL)
	assert.Equal(t, 24, cfg.TokenExpirationHours)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "hello", cfg.ProtectedMessage)
}

func TestLoadInvalidValues(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("TOKEN_EXPIRATION_HOURS", "not-a-number")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.TokenExpirationHours)

	t.Setenv("DB_DRIVER", "mongodb")
	_, err = config.Load()
	assert.Error(t, err)
}
