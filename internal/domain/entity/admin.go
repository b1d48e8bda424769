// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents an operator account of this service. Unlike User, which
// lives in the remote auth service, admins are persisted locally.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // Login identifier, unique.
	PasswordHash string    `json:"-"`     // bcrypt hash, never serialized.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
