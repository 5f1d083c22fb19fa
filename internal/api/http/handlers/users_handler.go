package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/service"
	"github.com/spec-kit/account-service/internal/validation"
)

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Register handles POST /users.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	user, err := h.auth.Register(c.UserContext(), parsePayload(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Message:  "User created successfully",
		Username: user.Username,
	})
}

// Login handles POST /login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	session, err := h.auth.Login(c.UserContext(), parsePayload(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{
		Message:   "Login successful",
		Token:     session.Token,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
	})
}

// Profile handles GET /profile.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	userID, ok := auth.SubjectFromContext(c)
	if !ok {
		return domain.ErrTokenMissing
	}
	profile, err := h.auth.Profile(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.Profile{}
	}
	return c.JSON(dto.UsersResponse{Users: users})
}

// parsePayload decodes the body as a JSON object. A missing, malformed or
// non-object body yields nil, which the validator rejects as no payload.
func parsePayload(c *fiber.Ctx) validation.Payload {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	var payload validation.Payload
	if err := c.App().Config().JSONDecoder(body, &payload); err != nil {
		return nil
	}
	return payload
}
