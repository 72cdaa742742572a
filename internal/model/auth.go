package model

import "time"

// AuthUser is the account payload returned by the auth endpoints. It is
// not envelope-wrapped and is not cross-referenced by content entities.
type AuthUser struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Provider  string    `json:"provider"`
	Confirmed bool      `json:"confirmed"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Credentials is the login request body. Identifier is a username or
// email address.
type Credentials struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the token-plus-user payload produced by login and
// register. The token is issued and owned by the backend; this client
// only stores it.
type AuthResponse struct {
	JWT  string   `json:"jwt"`
	User AuthUser `json:"user"`
}
