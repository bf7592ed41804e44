// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"arena/internal/delivery/http/middleware"
	"arena/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	SessionHandler       *handler.SessionHandler
	PasswordResetHandler *handler.PasswordResetHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	sessionHandler       *handler.SessionHandler
	passwordResetHandler *handler.PasswordResetHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		sessionHandler:       params.SessionHandler,
		passwordResetHandler: params.PasswordResetHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Every request passes through identity resolution; routes that demand a
	// player add RequireAuthenticated on top.
	e.Use(r.authMiddleware.WithAuthContext)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		// Logout demands a live access token as proof of possession; a caller
		// with only an expired pair goes through refresh first.
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.RequireAuthenticated)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.RequireAuthenticated)

		authGroup.POST("/forgot-password", r.passwordResetHandler.ForgotPassword)
		authGroup.GET("/reset-password", r.passwordResetHandler.VerifyResetToken)
		authGroup.POST("/reset-password", r.passwordResetHandler.ResetPassword)
	}

	// Session management routes, always scoped to the authenticated player
	sessionGroup := e.Group("/sessions")
	sessionGroup.Use(r.authMiddleware.RequireAuthenticated)
	{
		sessionGroup.GET("", r.sessionHandler.List)
		sessionGroup.DELETE("", r.sessionHandler.RevokeAll)
		sessionGroup.DELETE("/:id", r.sessionHandler.Revoke)
	}
}
