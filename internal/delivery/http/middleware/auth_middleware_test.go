package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"passport/config"
	deliverycontext "passport/internal/delivery/context"
	"passport/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestSetup(t *testing.T) (*AuthMiddleware, func(uuid.UUID) string) {
	t.Helper()

	tokenSvc, err := auth.NewJWTService(&config.Config{SecretKey: "test-secret"})
	require.NoError(t, err)

	issue := func(userID uuid.UUID) string {
		token, err := tokenSvc.Issue(userID)
		require.NoError(t, err)

		return token
	}

	return NewAuthMiddleware(tokenSvc), issue
}

func doAuthRequest(m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var callerID uuid.UUID
	var attached bool
	handler := m.Authenticate(func(c echo.Context) error {
		callerID, attached = deliverycontext.GetCallerID(c)

		return c.NoContent(http.StatusOK)
	})

	_ = handler(c)

	return rec, callerID, attached
}

func TestAuthMiddleware_ValidTokenAttachesCaller(t *testing.T) {
	m, issue := newAuthTestSetup(t)
	userID := uuid.New()

	rec, callerID, attached := doAuthRequest(m, "Bearer "+issue(userID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, attached)
	assert.Equal(t, userID, callerID)
}

func TestAuthMiddleware_RejectsMissingHeader(t *testing.T) {
	m, _ := newAuthTestSetup(t)

	rec, _, attached := doAuthRequest(m, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
	assert.False(t, attached)
}

func TestAuthMiddleware_RejectsNonBearerHeader(t *testing.T) {
	m, issue := newAuthTestSetup(t)

	rec, _, attached := doAuthRequest(m, "Basic "+issue(uuid.New()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, attached)
}

func TestAuthMiddleware_RejectsTamperedToken(t *testing.T) {
	m, issue := newAuthTestSetup(t)

	rec, _, attached := doAuthRequest(m, "Bearer "+issue(uuid.New())+"x")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
	assert.False(t, attached)
}
