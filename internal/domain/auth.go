package domain

import "time"

// Session describes a successful login.
type Session struct {
	UserID    int64
	Username  string
	Token     string
	ExpiresAt time.Time
}
