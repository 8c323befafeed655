package models

import "time"

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Token     string    `json:"token"` // JWT token
}
