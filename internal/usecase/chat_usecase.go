package usecase

import (
	"context"

	"procurehub/internal/domain/entity"
	"procurehub/internal/domain/repository"
	"procurehub/pkg/errors"
	"procurehub/pkg/logger"
)

// ChatUseCase fronts the chat store and joins rooms with the display
// data the chat list needs.
type ChatUseCase struct {
	chatRepo    repository.ChatRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:    chatRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

func (uc *ChatUseCase) History(ctx context.Context, roomID string) (*entity.ChatRoom, error) {
	return uc.chatRepo.GetHistory(ctx, roomID)
}

func (uc *ChatUseCase) OpenRoom(ctx context.Context, roomID, side string) (*entity.ChatRoom, error) {
	if side != entity.SideBuyer && side != entity.SideSeller {
		return nil, errors.BadRequest("userType must be buyer or seller", nil)
	}
	return uc.chatRepo.ResetUnread(ctx, roomID, side)
}

func (uc *ChatUseCase) Append(ctx context.Context, identity repository.RoomIdentity, msg entity.ChatMessage) (*entity.ChatRoom, error) {
	// Rejected again here so no mutation path can create a self-chat,
	// whatever the caller resolved.
	if identity.BuyerID == identity.SellerID {
		return nil, errors.BadRequest("Buyer and seller cannot be the same user", nil)
	}
	if msg.SenderType != entity.SideBuyer && msg.SenderType != entity.SideSeller {
		return nil, errors.BadRequest("senderType must be buyer or seller", nil)
	}
	return uc.chatRepo.AppendMessage(ctx, identity, msg)
}

func (uc *ChatUseCase) RecentChats(ctx context.Context, userID string) ([]*entity.RecentChat, error) {
	if userID == "" {
		return nil, errors.BadRequest("userId is required", nil)
	}

	rooms, err := uc.chatRepo.ListRecentByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	chats := make([]*entity.RecentChat, 0, len(rooms))
	for _, room := range rooms {
		role := entity.SideBuyer
		if room.SellerID == userID {
			role = entity.SideSeller
		}

		chat := &entity.RecentChat{
			RoomID:       room.RoomID,
			ProductID:    room.ProductID,
			BuyerID:      room.BuyerID,
			SellerID:     room.SellerID,
			LastMessage:  room.LastMessage,
			MessageCount: len(room.Messages),
			UnreadCount:  room.UnreadCountFor(role),
			Role:         role,
			UpdatedAt:    room.UpdatedAt,
		}

		// Display enrichment is best-effort; a deleted product or user
		// must not hide the conversation.
		if product, err := uc.productRepo.GetByID(ctx, room.ProductID); err == nil {
			chat.Product = product.Summary()
		} else if !errors.Is(err, "NOT_FOUND") {
			logger.Warn("Failed to load product %s for chat list: %v", room.ProductID, err)
		}

		counterpartID := room.OtherParticipant(role)
		if counterpart, err := uc.userRepo.GetByID(ctx, counterpartID); err == nil {
			chat.Counterpart = counterpart.Summary()
		} else if !errors.Is(err, "NOT_FOUND") {
			logger.Warn("Failed to load user %s for chat list: %v", counterpartID, err)
		}

		chats = append(chats, chat)
	}

	return chats, nil
}
