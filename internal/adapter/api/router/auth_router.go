package router

import (
	"github.com/labstack/echo/v4"

	"procurehub/internal/adapter/api/handler"
	"procurehub/internal/adapter/api/middleware"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler, authMiddleware *middleware.AuthMiddleware) {
	// Public routes
	e.POST("/api/v1/auth/register", authHandler.Register)
	e.POST("/api/v1/auth/login", authHandler.Login)

	// Protected routes
	protected := e.Group("/api/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/profile", authHandler.Profile)
}
