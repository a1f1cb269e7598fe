package handler

import (
	"github.com/labstack/echo/v4"

	"procurehub/internal/infrastructure/websocket"
	"procurehub/internal/usecase"
	"procurehub/pkg/errors"
	"procurehub/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

// ListRecentChats returns the caller's conversations, most recently
// active first. The same list is available over the socket as the
// recent_chats event.
func (h *ChatHandler) ListRecentChats(c echo.Context) error {
	userID := c.Get("uid").(string)

	chats, err := h.chatUseCase.RecentChats(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, chats)
}

// GetChatHistory returns the conversation for a product between a buyer
// and a seller. The room id is derived server side from the three ids
// and the caller must be one of the two participants.
func (h *ChatHandler) GetChatHistory(c echo.Context) error {
	productID := c.QueryParam("productId")
	buyerID := c.QueryParam("buyerId")
	sellerID := c.QueryParam("sellerId")
	if productID == "" || buyerID == "" || sellerID == "" {
		return response.Error(c, errors.BadRequest("productId, buyerId and sellerId are required", nil))
	}
	if buyerID == sellerID {
		return response.Error(c, errors.BadRequest("Buyer and seller cannot be the same user", nil))
	}

	userID := c.Get("uid").(string)
	if userID != buyerID && userID != sellerID {
		return response.Error(c, errors.Forbidden("You are not a participant in this conversation", nil))
	}

	roomID := websocket.ResolveRoomID(productID, buyerID, sellerID)
	room, err := h.chatUseCase.History(c.Request().Context(), roomID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, room)
}
