package dto

import (
	"time"

	"github.com/spec-kit/account-service/internal/domain"
)

// RegisterResponse is returned by POST /users.
type RegisterResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UsersResponse is returned by GET /users.
type UsersResponse struct {
	Users []domain.Profile `json:"users"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
