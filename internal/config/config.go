package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// StoreDriver selects the user store backend.
type StoreDriver string

const (
	StoreSQLite   StoreDriver = "sqlite"
	StorePostgres StoreDriver = "postgres"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// DatabaseConfig holds user store connection values.
type DatabaseConfig struct {
	URL            string
	Driver         StoreDriver
	SQLitePath     string
	PostgresDSN    string
	RunMigrations  bool
	MaxConns       int32
	MinConns       int32
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values. An empty Addr disables the profile cache.
type RedisConfig struct {
	Addr            string
	Password        string
	DB              int
	ProfileCacheTTL time.Duration
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret             string
	SecretGenerated       bool
	AccessTokenTTLMinutes int
	BcryptCost            int
	MinPasswordLength     int
	EqualizeLoginTiming   bool
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	db := DatabaseConfig{
		URL:            getEnv("DATABASE_URL", "sqlite:///users.db"),
		RunMigrations:  getEnvAsBool("DB_RUN_MIGRATIONS", true),
		MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
		MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
		ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
		ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
	}
	if err := db.resolve(); err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	generated := false
	if secret == "" {
		secret, err = randomSecret()
		if err != nil {
			return nil, fmt.Errorf("generate jwt secret: %w", err)
		}
		generated = true
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "account-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "127.0.0.1"),
			Port:                  getEnv("APP_PORT", "5000"),
			Version:               getEnv("APP_VERSION", "1.0.0"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Database: db,
		Redis: RedisConfig{
			Addr:            os.Getenv("REDIS_ADDR"),
			Password:        os.Getenv("REDIS_PASSWORD"),
			DB:              redisDB,
			ProfileCacheTTL: time.Duration(getEnvAsInt("PROFILE_CACHE_TTL_SECONDS", 60)) * time.Second,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             secret,
			SecretGenerated:       generated,
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", bcrypt.DefaultCost),
			MinPasswordLength:     getEnvAsInt("AUTH_MIN_PASSWORD_LENGTH", 8),
			EqualizeLoginTiming:   getEnvAsBool("AUTH_EQUALIZE_LOGIN_TIMING", false),
		},
	}

	return cfg, nil
}

// resolve derives the driver and its connection target from URL.
// sqlite:///users.db is a relative path, sqlite:////var/lib/users.db an absolute one.
func (d *DatabaseConfig) resolve() error {
	switch {
	case strings.HasPrefix(d.URL, "sqlite:///"):
		d.Driver = StoreSQLite
		d.SQLitePath = strings.TrimPrefix(d.URL, "sqlite:///")
		if d.SQLitePath == "" {
			return fmt.Errorf("invalid DATABASE_URL %q: missing sqlite path", d.URL)
		}
	case strings.HasPrefix(d.URL, "postgres://"), strings.HasPrefix(d.URL, "postgresql://"):
		d.Driver = StorePostgres
		d.PostgresDSN = d.URL
	default:
		return fmt.Errorf("invalid DATABASE_URL %q: unsupported scheme", d.URL)
	}
	return nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// AccessTokenTTL returns the bearer token lifetime.
func (a AuthConfig) AccessTokenTTL() time.Duration {
	if a.AccessTokenTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(a.AccessTokenTTLMinutes) * time.Minute
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
