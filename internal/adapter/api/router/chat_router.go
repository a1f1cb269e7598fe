package router

import (
	"github.com/labstack/echo/v4"

	"procurehub/internal/adapter/api/handler"
	"procurehub/internal/adapter/api/middleware"
)

// SetupChatRouter sets up the REST chat routes (excluding WebSocket)
func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, authMiddleware *middleware.AuthMiddleware) {
	protected := e.Group("/api/v1/chats")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("", chatHandler.ListRecentChats)
	protected.GET("/history", chatHandler.GetChatHistory)
}
