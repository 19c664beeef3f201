package service

import "github.com/google/uuid"

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
//
// Tokens are stateless bearer credentials: there is no revocation state, so a
// token stays valid until its natural expiry even if the underlying account is
// deleted or demoted in the meantime.
type TokenService interface {
	// Issue creates a signed session token bound to the given user ID.
	// The token carries no claims besides the subject and its expiry.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks a token string and returns the subject user ID.
	// It returns an error for any malformed, mis-signed or expired token;
	// it never panics on untrusted input.
	Verify(token string) (uuid.UUID, error)
}
