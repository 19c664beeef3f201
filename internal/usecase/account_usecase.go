// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase defines the interface for account-related business operations.
// Caller identity is always passed explicitly as the verified subject of the
// session token; the use case consults the authorization policy itself before
// any listing or mutation.
type AccountUsecase interface {
	// Register creates a new account. Email uniqueness is pre-checked by the
	// delivery layer via EmailRegistered; the store's unique constraint is the
	// backstop against concurrent registrations of the same email.
	Register(ctx context.Context, input *RegisterInput) (*UserOutput, error)

	// Login verifies credentials and issues a 24-hour session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ListUsers returns every stored account, admin callers only.
	ListUsers(ctx context.Context, callerID uuid.UUID) ([]*UserOutput, error)

	// GetProfile returns the caller's own account.
	GetProfile(ctx context.Context, callerID uuid.UUID) (*UserOutput, error)

	// UpdateUser merges the patch over the target account. Self or admin only.
	UpdateUser(ctx context.Context, callerID, targetID uuid.UUID, input *UpdateUserInput) (*UserOutput, error)

	// DeleteUser removes the target account. Self or admin only.
	DeleteUser(ctx context.Context, callerID, targetID uuid.UUID) error

	// EmailRegistered reports whether an account with the given email exists.
	EmailRegistered(ctx context.Context, email string) (bool, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to register an account.
// The admin flag may only be set here, at creation time; updates strip it.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdm"`
}

// LoginInput defines the credentials for a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserInput is the patch applied by UpdateUser. Nil fields are left
// untouched; present fields win over the stored record.
//
// There is no admin-flag field: an `isAdm` key in the request body is
// dropped during binding, so no caller can change the flag through an
// update.
type UpdateUserInput struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// --- Output DTOs ---

// LoginOutput carries the issued session token.
type LoginOutput struct {
	Token string `json:"token"`
}

// UserOutput is the sanitized read-path representation of an account.
// The JSON field names preserve the service's existing wire contract.
// It never carries the password hash.
type UserOutput struct {
	ID        uuid.UUID `json:"uuid"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	IsAdmin   bool      `json:"isAdm"`
	CreatedAt time.Time `json:"createdOn"`
	UpdatedAt time.Time `json:"updatedOn"`
}

// SanitizeUser maps a domain user to its read-path representation,
// omitting the password hash.
func SanitizeUser(user *entity.User) *UserOutput {
	if user == nil {
		return nil
	}

	return &UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// SanitizeUsers maps a slice of domain users, omitting password hashes.
func SanitizeUsers(users []*entity.User) []*UserOutput {
	outputs := make([]*UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, SanitizeUser(user))
	}

	return outputs
}
