package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/spec-kit/account-service/internal/repository"
)

// SQLite wraps a database/sql handle on a SQLite file.
type SQLite struct {
	DB     *sql.DB
	logger *zap.Logger
}

var _ Store = (*SQLite)(nil)

// NewSQLite opens the database file at path.
func NewSQLite(ctx context.Context, path string, logger *zap.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	db.SetConnMaxLifetime(5 * time.Minute)

	logger.Info("opened sqlite database", zap.String("path", path))
	return &SQLite{DB: db, logger: logger}, nil
}

// Users returns the SQLite user repository.
func (s *SQLite) Users() repository.UserRepository {
	return repository.NewSQLiteUserRepository(s.DB)
}

// Migrate applies the SQLite schema.
func (s *SQLite) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.DB, goose.DialectSQLite3, s.logger)
}

// Ping verifies the database file is reachable.
func (s *SQLite) Ping(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("sqlite database not configured")
	}
	return s.DB.PingContext(ctx)
}

// Close closes the database handle.
func (s *SQLite) Close() {
	if s != nil && s.DB != nil {
		_ = s.DB.Close()
	}
}
