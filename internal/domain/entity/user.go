// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing a single account.
// The ID is assigned by the store at creation and never reused; PasswordHash
// holds the bcrypt hash of the account password and must never leave the
// service in any read-path output.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The unique login identifier. Uniqueness is enforced by the store.
	Name         string    // The user's display name.
	PasswordHash string    // bcrypt hash of the account password. Never serialized.
	IsAdmin      bool      // Grants the admin override in the authorization policy.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
