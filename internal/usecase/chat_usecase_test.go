package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"procurehub/internal/domain/entity"
	"procurehub/internal/domain/repository"
	"procurehub/pkg/errors"
)

func newChatFixture() (*ChatUseCase, *memChatRepo, *memUserRepo, *memProductRepo) {
	chatRepo := newMemChatRepo()
	userRepo := newMemUserRepo()
	productRepo := newMemProductRepo()
	return NewChatUseCase(chatRepo, userRepo, productRepo), chatRepo, userRepo, productRepo
}

func TestChatUseCaseAppend(t *testing.T) {
	identity := repository.RoomIdentity{
		RoomID:    "room-1",
		ProductID: "prod-1",
		BuyerID:   "buyer-1",
		SellerID:  "seller-1",
	}

	t.Run("appends and increments the recipient counter", func(t *testing.T) {
		req := require.New(t)
		uc, _, _, _ := newChatFixture()

		room, err := uc.Append(context.Background(), identity, entity.ChatMessage{
			SenderID:   "buyer-1",
			SenderType: entity.SideBuyer,
			Message:    "hello",
			Timestamp:  time.Now(),
		})

		req.NoError(err)
		req.Len(room.Messages, 1)
		req.Equal(1, room.SellerUnreadCount)
		req.Zero(room.BuyerUnreadCount)
		req.Equal("hello", room.LastMessage.Message)
	})

	t.Run("rejects a self chat identity", func(t *testing.T) {
		req := require.New(t)
		uc, _, _, _ := newChatFixture()

		_, err := uc.Append(context.Background(), repository.RoomIdentity{
			RoomID:    "room-x",
			ProductID: "prod-1",
			BuyerID:   "user-1",
			SellerID:  "user-1",
		}, entity.ChatMessage{SenderID: "user-1", SenderType: entity.SideBuyer, Message: "hi"})

		req.Error(err)
		req.True(errors.Is(err, "BAD_REQUEST"))
	})

	t.Run("rejects an unknown sender side", func(t *testing.T) {
		req := require.New(t)
		uc, _, _, _ := newChatFixture()

		_, err := uc.Append(context.Background(), identity, entity.ChatMessage{
			SenderID:   "buyer-1",
			SenderType: "admin",
			Message:    "hi",
		})

		req.Error(err)
		req.True(errors.Is(err, "BAD_REQUEST"))
	})
}

func TestChatUseCaseOpenRoom(t *testing.T) {
	t.Run("resets only the opener's counter", func(t *testing.T) {
		req := require.New(t)
		uc, chatRepo, _, _ := newChatFixture()
		chatRepo.rooms["room-1"] = &entity.ChatRoom{
			RoomID:            "room-1",
			BuyerID:           "buyer-1",
			SellerID:          "seller-1",
			Messages:          []entity.ChatMessage{},
			BuyerUnreadCount:  4,
			SellerUnreadCount: 7,
		}

		room, err := uc.OpenRoom(context.Background(), "room-1", entity.SideSeller)

		req.NoError(err)
		req.Zero(room.SellerUnreadCount)
		req.Equal(4, room.BuyerUnreadCount)
	})

	t.Run("rejects an unknown side", func(t *testing.T) {
		req := require.New(t)
		uc, _, _, _ := newChatFixture()

		_, err := uc.OpenRoom(context.Background(), "room-1", "observer")

		req.Error(err)
		req.True(errors.Is(err, "BAD_REQUEST"))
	})

	t.Run("an unknown room opens empty", func(t *testing.T) {
		req := require.New(t)
		uc, _, _, _ := newChatFixture()

		room, err := uc.OpenRoom(context.Background(), "room-never", entity.SideBuyer)

		req.NoError(err)
		req.Equal("room-never", room.RoomID)
		req.Empty(room.Messages)
	})
}

func TestChatUseCaseRecentChats(t *testing.T) {
	t.Run("lists rooms with the caller's role and unread counter", func(t *testing.T) {
		req := require.New(t)
		uc, chatRepo, userRepo, productRepo := newChatFixture()

		userRepo.Create(context.Background(), &entity.User{ID: "seller-1", FirstName: "Asha"})
		productRepo.Create(context.Background(), &entity.Product{ID: "prod-1", Title: "Steel pipes"})

		last := entity.ChatMessage{SenderID: "seller-1", SenderType: entity.SideSeller, Message: "deal?"}
		chatRepo.rooms["room-1"] = &entity.ChatRoom{
			RoomID:            "room-1",
			ProductID:         "prod-1",
			BuyerID:           "buyer-1",
			SellerID:          "seller-1",
			Messages:          []entity.ChatMessage{last},
			LastMessage:       &last,
			BuyerUnreadCount:  2,
			SellerUnreadCount: 0,
		}

		chats, err := uc.RecentChats(context.Background(), "buyer-1")

		req.NoError(err)
		req.Len(chats, 1)
		req.Equal(entity.SideBuyer, chats[0].Role)
		req.Equal(2, chats[0].UnreadCount)
		req.Equal("Steel pipes", chats[0].Product.Title)
		req.Equal("Asha", chats[0].Counterpart.FirstName)
	})

	t.Run("a deleted product or user does not hide the chat", func(t *testing.T) {
		req := require.New(t)
		uc, chatRepo, _, _ := newChatFixture()

		chatRepo.rooms["room-1"] = &entity.ChatRoom{
			RoomID:    "room-1",
			ProductID: "prod-gone",
			BuyerID:   "buyer-1",
			SellerID:  "seller-gone",
			Messages:  []entity.ChatMessage{},
		}

		chats, err := uc.RecentChats(context.Background(), "buyer-1")

		req.NoError(err)
		req.Len(chats, 1)
		req.Nil(chats[0].Product)
		req.Nil(chats[0].Counterpart)
	})

	t.Run("requires a userId", func(t *testing.T) {
		req := require.New(t)
		uc, _, _, _ := newChatFixture()

		_, err := uc.RecentChats(context.Background(), "")

		req.Error(err)
	})
}
