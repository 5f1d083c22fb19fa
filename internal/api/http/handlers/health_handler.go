package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/persistence"
)

// Pinger is a dependency that can report its reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to health, liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	store       Pinger
	redis       *persistence.Redis
	now         func() time.Time
}

// NewHealthHandler returns a new handler instance. redis may be nil.
func NewHealthHandler(serviceName, version string, store Pinger, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		store:       store,
		redis:       redis,
		now:         time.Now,
	}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC(),
		Version:   h.version,
	})
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking dependencies.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if err := h.store.Ping(ctx); err != nil {
		depStatus["database"] = "unavailable"
		ready = false
	} else {
		depStatus["database"] = "ok"
	}

	if h.redis.Enabled() {
		if err := h.redis.Ping(ctx); err != nil {
			depStatus["redis"] = "unavailable"
			ready = false
		} else {
			depStatus["redis"] = "ok"
		}
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error":   "One or more dependencies unavailable",
		"code":    "DEPENDENCY_UNAVAILABLE",
		"details": depStatus,
	})
}
