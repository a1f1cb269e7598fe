package repository

import (
	"context"

	"procurehub/internal/domain/entity"
)

// RoomIdentity is the immutable triple written once on the first message
// into a room ($setOnInsert).
type RoomIdentity struct {
	RoomID    string
	ProductID string
	BuyerID   string
	SellerID  string
}

// ChatRepository is the persistence contract for chat rooms. Every
// mutating operation is atomic at the document level.
type ChatRepository interface {
	// GetHistory returns the room document, or an empty room with the
	// given roomId if it has not been created yet.
	GetHistory(ctx context.Context, roomID string) (*entity.ChatRoom, error)

	// ResetUnread sets the given side's unread counter to zero and
	// returns the updated document. A missing room is not an error.
	ResetUnread(ctx context.Context, roomID string, side string) (*entity.ChatRoom, error)

	// AppendMessage upserts the room (identity fields set only on
	// insert), appends the message, overwrites lastMessage and
	// increments the recipient side's unread counter, all in one
	// document update. Returns the updated document.
	AppendMessage(ctx context.Context, identity RoomIdentity, msg entity.ChatMessage) (*entity.ChatRoom, error)

	// ListRecentByUser returns all rooms where the user is buyer or
	// seller, excluding self-chats, most recently updated first.
	ListRecentByUser(ctx context.Context, userID string) ([]*entity.ChatRoom, error)
}
