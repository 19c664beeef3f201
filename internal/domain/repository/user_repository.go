// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned by Create when the email unique constraint is violated.
// The delivery layer pre-checks email availability, but the store constraint is the
// authoritative backstop against concurrent registrations of the same email.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity. The store assigns the ID and
	// both timestamps, and writes them back to the entity.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// The lookup is case-sensitive.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every stored user record.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user record by ID. Returns ErrUserNotFound when
	// no record matches.
	Delete(ctx context.Context, id uuid.UUID) error
}
