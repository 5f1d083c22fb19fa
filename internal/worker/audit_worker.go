package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/events"
)

// StartAuditWorker subscribes a security audit logger to every auth event.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	audit := logger.Named("audit")

	dispatcher.Subscribe(events.EventUserRegistered, func(_ context.Context, e events.Event) error {
		p, _ := e.Payload.(events.UserRegisteredPayload)
		audit.Info("user created", zap.String("event_id", e.ID), zap.Int64("user_id", p.UserID), zap.String("username", p.Username))
		return nil
	})
	dispatcher.Subscribe(events.EventLoginSucceeded, func(_ context.Context, e events.Event) error {
		p, _ := e.Payload.(events.LoginSucceededPayload)
		audit.Info("successful login", zap.String("event_id", e.ID), zap.Int64("user_id", p.UserID), zap.String("username", p.Username))
		return nil
	})
	dispatcher.Subscribe(events.EventLoginFailed, func(_ context.Context, e events.Event) error {
		p, _ := e.Payload.(events.LoginFailedPayload)
		audit.Warn("failed login attempt", zap.String("event_id", e.ID), zap.String("username", p.Username), zap.Bool("unknown_user", p.UnknownUser))
		return nil
	})
	dispatcher.Subscribe(events.EventTokenRejected, func(_ context.Context, e events.Event) error {
		p, _ := e.Payload.(events.TokenRejectedPayload)
		audit.Warn("token rejected", zap.String("event_id", e.ID), zap.String("reason", p.Reason))
		return nil
	})
}
