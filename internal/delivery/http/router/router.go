// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"gatekeeper/config"
	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	AuthHandler     *handler.AuthHandler
	PageHandler     *handler.PageHandler
	GuardMiddleware *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	pageHandler     *handler.PageHandler
	guardMiddleware *middleware.GuardMiddleware
	signInPath      string
	errorPath       string
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		pageHandler:     params.PageHandler,
		guardMiddleware: params.GuardMiddleware,
		signInPath:      params.Config.Guard.SignInPath,
		errorPath:       params.Config.Guard.ErrorPath,
	}
}

// RegisterRoutes sets up all the routes for the application. The guard runs
// pre-dispatch on every request; its own pattern table decides which paths
// it actually gates.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.guardMiddleware.Guard)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes (public entry points of the session lifecycle)
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/session", r.authHandler.Session)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Redirect targets live wherever config points the guard at, so
	// the redirect destination always resolves to a mounted route.
	e.GET(r.signInPath, r.authHandler.SignIn)
	e.GET(r.errorPath, r.authHandler.AuthError)

	// Protected pages; gated by the guard's pattern table, not by
	// per-handler checks.
	e.GET("/dashboard", r.pageHandler.Dashboard)
	e.GET("/settings", r.pageHandler.Settings)
	e.GET("/profile", r.pageHandler.Profile)
}
