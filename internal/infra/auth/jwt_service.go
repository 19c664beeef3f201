// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"passport/config"
	"passport/internal/domain/service"
)

// sessionTokenTTL is the fixed expiration horizon for session tokens.
const sessionTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are HS256-signed with a single process-wide secret loaded once at startup;
// key rotation is out of scope.
type jwtService struct {
	secret   string
	tokenTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// An absent or empty signing secret is a startup failure, never a silently
// unsigned service.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtService{
		secret:   cfg.SecretKey,
		tokenTTL: sessionTokenTTL,
	}, nil
}

// Issue creates a signed session token for the given user.
// The claims are limited to the subject, issue time and expiry.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Verify checks the signature and expiry of a token string and resolves its
// subject. Every failure mode returns an error; untrusted input never panics.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return uuid.Nil, errors.New("session token carries no subject")
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.New("session token subject is not a valid user id")
	}

	return subject, nil
}
