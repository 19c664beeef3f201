package middleware

import (
	"strings"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/delivery/http/response"
	"passport/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for session-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and attaches the caller's ID to the
// request. Every failure mode answers with the same "Invalid token" message so
// the response does not reveal why verification failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token")
		}

		callerID, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token")
		}

		deliverycontext.SetCallerID(c, callerID)

		return next(c)
	}
}
