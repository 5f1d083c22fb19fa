package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/observability"
)

// ServerOptions configures NewServer.
type ServerOptions struct {
	AppName        string
	Logger         *zap.Logger
	Metrics        *observability.Metrics
	RequestTimeout time.Duration
	Routes         RouteConfig
}

// NewServer builds the fiber app with middlewares and routes registered.
func NewServer(opts ServerOptions) *fiber.App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               opts.AppName,
		DisableStartupMessage: true,
		// Reached only when the error middleware itself fails to write.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return writeError(c, MapError(err))
		},
	})

	RegisterMiddlewares(app, logger, opts.Metrics, opts.RequestTimeout)
	RegisterRoutes(app, opts.Routes)
	return app
}
