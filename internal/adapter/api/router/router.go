package router

import (
	"github.com/labstack/echo/v4"

	"procurehub/internal/adapter/api/handler"
	"procurehub/internal/adapter/api/middleware"
)

// Handlers bundles everything the HTTP surface needs. Built once in main
// and handed to Setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	Product     *handler.ProductHandler
	Bid         *handler.BidHandler
	Requirement *handler.RequirementHandler
	Chat        *handler.ChatHandler
	WebSocket   *handler.WebSocketHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, h.Auth, authMiddleware)
	SetupProductRouter(e, h.Product, authMiddleware)
	SetupBidRouter(e, h.Bid, authMiddleware)
	SetupRequirementRouter(e, h.Requirement, authMiddleware)
	SetupChatRouter(e, h.Chat, authMiddleware)
	SetupWebSocketRouter(e, h.WebSocket)
}
