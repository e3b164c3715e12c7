package models

import "time"

// Admin is the identity of a logged-in back-office user
type Admin struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
	SessionID string    `json:"-"`
}
