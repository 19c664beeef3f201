// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes
	e.POST("/users", r.accountHandler.Register)
	e.POST("/login", r.accountHandler.Login)

	// Account routes that require a valid session token
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.accountHandler.ListUsers)
		userGroup.GET("/profile", r.accountHandler.GetProfile)
		userGroup.PATCH("/:uuid", r.accountHandler.UpdateUser)
		userGroup.DELETE("/:uuid", r.accountHandler.DeleteUser)
	}
}
