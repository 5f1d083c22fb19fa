package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

const subjectKey = "auth_subject"

// Authorizer resolves a raw Authorization header to a user id.
type Authorizer interface {
	Authorize(ctx context.Context, header string) (int64, error)
}

// AuthMiddleware validates bearer tokens and stores the resolved subject.
type AuthMiddleware struct {
	authorizer Authorizer
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(authorizer Authorizer) *AuthMiddleware {
	return &AuthMiddleware{authorizer: authorizer}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	userID, err := m.authorizer.Authorize(c.UserContext(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return err
	}

	c.Locals(subjectKey, userID)
	return c.Next()
}

// SubjectFromContext retrieves the authenticated user id.
func SubjectFromContext(c *fiber.Ctx) (int64, bool) {
	userID, ok := c.Locals(subjectKey).(int64)
	return userID, ok
}
