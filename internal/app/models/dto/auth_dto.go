package dto

import "time"

// LoginRequest represents admin credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the backend's answer to a login
type LoginResponse struct {
	Token string `json:"token"`
}

// SessionResponse describes the console session
type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	UserID        string     `json:"userId,omitempty"`
	Role          string     `json:"role,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	LoggedOutAt   *time.Time `json:"loggedOutAt,omitempty"`
}
