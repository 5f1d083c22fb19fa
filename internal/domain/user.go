package domain

import "time"

// MaxUsernameLength mirrors the CHECK constraint on users.username.
const MaxUsernameLength = 255

// User is the persisted account record.
type User struct {
	ID           int64
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Profile is the public projection of a User. It never carries the hash.
type Profile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile returns the public view of the user.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
}
