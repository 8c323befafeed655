package entities

import "time"

// User represents a registered user in the database
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // Plaintext, never exposed in JSON (see DESIGN.md security gap)
	CreatedAt time.Time `json:"created_at"`
}
