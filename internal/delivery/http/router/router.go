// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"warden/config"
	"warden/internal/delivery/http/middleware"
	"warden/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config                *config.Config
	AdminHandler          *handler.AdminHandler
	UserManagementHandler *handler.UserManagementHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	adminHandler   *handler.AdminHandler
	userMgmt       *handler.UserManagementHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		adminHandler:   params.AdminHandler,
		userMgmt:       params.UserManagementHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and metrics endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Admin account routes (no authentication)
	adminAuthGroup := e.Group("/api/adminAuth")
	{
		adminAuthGroup.POST("/create", r.adminHandler.Create)
		adminAuthGroup.POST("/login", r.adminHandler.Login)
	}

	// User-lifecycle routes that require an authenticated admin
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	if r.cfg.RateLimit != nil && r.cfg.RateLimit.RPS > 0 {
		adminGroup.Use(middleware.RateLimitPerIP(r.cfg.RateLimit.RPS, r.cfg.RateLimit.Burst))
	}
	{
		adminGroup.GET("/users", r.userMgmt.ListUsers)
		adminGroup.GET("/users/:userId", r.userMgmt.GetUser)
		adminGroup.POST("/users/:userId/approve", r.userMgmt.ApproveRole)
		adminGroup.POST("/users/:userId/reject", r.userMgmt.RejectRole)
		adminGroup.POST("/users/:userId/suspend", r.userMgmt.Suspend)
		adminGroup.POST("/users/:userId/reinstate", r.userMgmt.Reinstate)
		adminGroup.POST("/users/:userId/ban", r.userMgmt.Ban)
		adminGroup.GET("/pending-applications", r.userMgmt.ListPendingApplications)
		adminGroup.GET("/statistics", r.userMgmt.Statistics)
	}
}
