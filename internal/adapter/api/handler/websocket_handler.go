package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"procurehub/internal/adapter/api/middleware"
	ws "procurehub/internal/infrastructure/websocket"
	"procurehub/pkg/errors"
	"procurehub/pkg/logger"
)

type WebSocketHandler struct {
	manager        *ws.Manager
	router         *ws.Router
	authMiddleware *middleware.AuthMiddleware
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict to the frontend origin once it is fixed
	},
}

func NewWebSocketHandler(manager *ws.Manager, router *ws.Router, authMiddleware *middleware.AuthMiddleware) *WebSocketHandler {
	return &WebSocketHandler{
		manager:        manager,
		router:         router,
		authMiddleware: authMiddleware,
	}
}

// HandleWebSocket upgrades the connection and starts its pumps. Auth is
// handled here rather than in middleware so browser clients can pass the
// token as a query parameter.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	userID, err := h.authMiddleware.VerifyToken(token)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	client.Session.UserID = userID

	h.manager.Register <- client
	h.manager.Bind(userID, client)

	logger.Info("WebSocket connection %s opened for user %s", client.ID, userID)

	go client.ReadPump(h.router)
	go client.WritePump()

	return nil
}
