package router

import (
	"github.com/labstack/echo/v4"

	"procurehub/internal/adapter/api/handler"
	"procurehub/internal/adapter/api/middleware"
)

// SetupRequirementRouter sets up requirement routes
func SetupRequirementRouter(e *echo.Echo, requirementHandler *handler.RequirementHandler, authMiddleware *middleware.AuthMiddleware) {
	protected := e.Group("/api/v1/requirements")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", requirementHandler.CreateRequirement)
	protected.GET("", requirementHandler.ListRequirements)
}
