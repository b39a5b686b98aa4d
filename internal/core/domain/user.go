package domain

import "time"

// User models an account in the catalog. Members comment on orchids; admins
// manage the catalog itself. The two roles are mutually exclusive.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims is the verified payload of an access token. Instances only exist
// after signature and expiry checks have passed.
type Claims struct {
	UserID   string
	Username string
	IsAdmin  bool
}
