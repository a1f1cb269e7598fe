package router

import (
	"github.com/labstack/echo/v4"

	"procurehub/internal/adapter/api/handler"
)

// SetupWebSocketRouter sets up the WebSocket route. No auth middleware
// here: the handler verifies the token itself from the query string.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/ws", wsHandler.HandleWebSocket)
}
