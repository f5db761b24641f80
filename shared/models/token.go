package models

import "time"

// TokenRequest is the body of POST /auth/token.
type TokenRequest struct {
	Username string `json:"username"`
}

// TokenResponse is returned after a token has been issued.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
}

// ValidationResponse echoes the identity found in a verified token.
type ValidationResponse struct {
	Valid         bool    `json:"valid"`
	Username      *string `json:"username"`
	UserID        *string `json:"userId"`
	Authenticated bool    `json:"authenticated"`
}
