package domain

import "time"

// Role is the authorization level of a user.
type Role string

// Available roles.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Defaults for newly registered users.
const (
	DefaultLanguage = "en"
)

// User is an authenticated traveler.
type User struct {
	ID                string    `json:"id"`
	OpenID            string    `json:"openId"`
	Name              string    `json:"name,omitempty"`
	Email             string    `json:"email,omitempty"`
	LoginMethod       string    `json:"loginMethod,omitempty"`
	Role              Role      `json:"role"`
	PreferredLanguage string    `json:"preferredLanguage"`
	PreferredCurrency string    `json:"preferredCurrency"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	LastSignedIn      time.Time `json:"lastSignedIn"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Principal is the identity extracted from a verified bearer token.
type Principal struct {
	OpenID string
	Name   string
	Email  string
	Role   Role
}
