package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_VERSION", "DATABASE_URL", "JWT_SECRET_KEY",
		"AUTH_ACCESS_TOKEN_TTL_MINUTES", "AUTH_BCRYPT_COST", "REDIS_ADDR",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5000", cfg.App.Addr())
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, StoreSQLite, cfg.Database.Driver)
	assert.Equal(t, "users.db", cfg.Database.SQLitePath)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 8, cfg.Auth.MinPasswordLength)
	assert.False(t, cfg.Auth.EqualizeLoginTiming)
	assert.Empty(t, cfg.Redis.Addr)

	assert.True(t, cfg.Auth.SecretGenerated)
	assert.Len(t, cfg.Auth.JWTSecret, 64)
}

func TestLoadGeneratesFreshSecretPerProcessStart(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	assert.NotEqual(t, first.Auth.JWTSecret, second.Auth.JWTSecret)
}

func TestLoadUsesProvidedSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.False(t, cfg.Auth.SecretGenerated)
}

func TestDatabaseURLResolution(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		driver   StoreDriver
		path     string
		dsn      string
		expected bool
	}{
		{name: "relative sqlite", url: "sqlite:///users.db", driver: StoreSQLite, path: "users.db", expected: true},
		{name: "absolute sqlite", url: "sqlite:////var/lib/app/users.db", driver: StoreSQLite, path: "/var/lib/app/users.db", expected: true},
		{name: "postgres", url: "postgres://u:p@db:5432/app", driver: StorePostgres, dsn: "postgres://u:p@db:5432/app", expected: true},
		{name: "postgresql scheme", url: "postgresql://db/app", driver: StorePostgres, dsn: "postgresql://db/app", expected: true},
		{name: "empty sqlite path", url: "sqlite:///", expected: false},
		{name: "unknown scheme", url: "mysql://db/app", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DatabaseConfig{URL: tt.url}
			err := d.resolve()
			if !tt.expected {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.driver, d.Driver)
			assert.Equal(t, tt.path, d.SQLitePath)
			assert.Equal(t, tt.dsn, d.PostgresDSN)
		})
	}
}

func TestInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
