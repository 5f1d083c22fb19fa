package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/account-service/internal/api/http"
	"github.com/spec-kit/account-service/internal/api/http/handlers"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/cache"
	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/observability"
	"github.com/spec-kit/account-service/internal/persistence"
	"github.com/spec-kit/account-service/internal/service"
	"github.com/spec-kit/account-service/internal/worker"
)

// newRootCmd builds the CLI. Running without a subcommand serves HTTP.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "account-service",
		Short:         "User registration, login and bearer-token access service.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd.Context())
		},
	})
	return root
}

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return nil, nil, err
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		return nil, nil, err
	}
	return cfg, logger, nil
}

func runMigrate(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	store, err := persistence.OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open store", zap.Error(err))
		return err
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		logger.Error("failed to run migrations", zap.Error(err))
		return err
	}
	return nil
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Auth.SecretGenerated {
		logger.Warn("JWT_SECRET_KEY not set; generated a random secret, tokens will not survive a restart")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store, err := persistence.OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open store", zap.Error(err))
		return err
	}
	defer store.Close()

	if cfg.Database.RunMigrations {
		if err := store.Migrate(ctx); err != nil {
			logger.Error("failed to run migrations", zap.Error(err))
			return err
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var profiles service.ProfileCache
	if redis.Enabled() {
		profiles = cache.NewRedisProfileCache(redis.Client, cfg.Redis.ProfileCacheTTL)
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:     store.Users(),
		ProfileCache: profiles,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})

	app := httptransport.NewServer(httptransport.ServerOptions{
		AppName:        cfg.App.Name,
		Logger:         logger,
		Metrics:        observability.NewMetrics(),
		RequestTimeout: cfg.App.RequestTimeout(),
		Routes: httptransport.RouteConfig{
			Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store, redis),
			Users:          handlers.NewUsersHandler(authService),
			AuthMiddleware: auth.NewAuthMiddleware(authService),
		},
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		listenErr <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-listenErr:
		logger.Error("fiber listen", zap.Error(err))
		return err
	case <-waitForShutdown(logger):
	}

	return app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) <-chan struct{} {
	done := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("shutting down", zap.String("signal", sig.String()))
		close(done)
	}()
	return done
}
