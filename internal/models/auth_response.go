package models

import "time"

// TokenResponse represents the bearer token issued at login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse represents a user profile returned after registration
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// UserStatusResponse represents the authenticated user's profile together
// with the URLs it owns
type UserStatusResponse struct {
	ID       int64          `json:"id"`
	Username string         `json:"username"`
	URLs     []*URLResponse `json:"urls"`
}
