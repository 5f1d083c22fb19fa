package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/repository"
)

// Store is an opened user store backend.
type Store interface {
	Users() repository.UserRepository
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close()
}

// OpenStore connects to the backend selected by cfg.Driver.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case config.StorePostgres:
		return NewPostgres(ctx, cfg, logger)
	case config.StoreSQLite:
		return NewSQLite(ctx, cfg.SQLitePath, logger)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}
