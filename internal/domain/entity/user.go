package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account that owns websites and signs in to the dashboard.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"`      // The user's login identifier.
	Name         string    `json:"name"`       // The user's display name.
	PasswordHash string    `json:"-"`          // The bcrypt hash of the user's password.
	FCMToken     string    `json:"-"`          // Optional device token for dashboard push alerts.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification.
}
