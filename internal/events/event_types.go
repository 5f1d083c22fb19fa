package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventLoginSucceeded EventType = "login_succeeded"
	EventLoginFailed    EventType = "login_failed"
	EventTokenRejected  EventType = "token_rejected"
)

// Event represents an auth event emitted by services. Payloads never carry
// passwords, hashes or tokens.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps a payload with an id and the current time.
func NewEvent(eventType EventType, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// LoginSucceededPayload payload.
type LoginSucceededPayload struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// LoginFailedPayload payload. UnknownUser stays server-side; clients see one message for both cases.
type LoginFailedPayload struct {
	Username    string `json:"username"`
	UnknownUser bool   `json:"unknown_user"`
}

// TokenRejectedPayload payload.
type TokenRejectedPayload struct {
	Reason string `json:"reason"`
}
