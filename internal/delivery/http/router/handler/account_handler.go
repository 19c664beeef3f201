// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/delivery/http/response"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request. The email uniqueness
// pre-check answers 409 before the account service runs; the store's unique
// constraint remains the backstop for concurrent registrations.
func (h *AccountHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid registration input")
	}

	registered, err := h.uc.EmailRegistered(c.Request().Context(), input.Email)
	if err != nil {
		return errors.WithStack(err)
	}
	if registered {
		return response.Conflict(c, "EMAIL_ALREADY_REGISTERED", "E-mail already registered")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Login handles the login request and returns the session token.
func (h *AccountHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// ListUsers returns every account, admin callers only.
func (h *AccountHandler) ListUsers(c echo.Context) error {
	callerID, ok := deliverycontext.GetCallerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token")
	}

	outputs, err := h.uc.ListUsers(c.Request().Context(), callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "Users retrieved successfully")
}

// GetProfile returns the caller's own account.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	callerID, ok := deliverycontext.GetCallerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token")
	}

	output, err := h.uc.GetProfile(c.Request().Context(), callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile retrieved successfully")
}

// UpdateUser merges the request patch over the target account.
func (h *AccountHandler) UpdateUser(c echo.Context) error {
	callerID, ok := deliverycontext.GetCallerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token")
	}

	targetID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	// UpdateUserInput has no admin-flag field, so an `isAdm` key in the
	// body is dropped here during binding.
	var input *usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid update input")
	}

	output, err := h.uc.UpdateUser(c.Request().Context(), callerID, targetID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "User updated successfully")
}

// DeleteUser removes the target account.
func (h *AccountHandler) DeleteUser(c echo.Context) error {
	callerID, ok := deliverycontext.GetCallerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token")
	}

	targetID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), callerID, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
