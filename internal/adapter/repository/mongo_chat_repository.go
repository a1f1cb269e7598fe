package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"procurehub/internal/domain/entity"
	"procurehub/internal/domain/repository"
	"procurehub/pkg/errors"
)

type mongoChatRepository struct {
	chats *mongo.Collection
}

func NewMongoChatRepository(db *mongo.Database) repository.ChatRepository {
	return &mongoChatRepository{
		chats: db.Collection("chats"),
	}
}

func (r *mongoChatRepository) GetHistory(ctx context.Context, roomID string) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := r.chats.FindOne(ctx, bson.M{"roomId": roomID}).Decode(&room)
	if err == mongo.ErrNoDocuments {
		// Room not created yet: empty history, zero counters.
		return &entity.ChatRoom{RoomID: roomID, Messages: []entity.ChatMessage{}}, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to fetch chat history", err)
	}

	if room.Messages == nil {
		room.Messages = []entity.ChatMessage{}
	}
	return &room, nil
}

func (r *mongoChatRepository) ResetUnread(ctx context.Context, roomID string, side string) (*entity.ChatRoom, error) {
	counter := "buyerUnreadCount"
	if side == entity.SideSeller {
		counter = "sellerUnreadCount"
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var room entity.ChatRoom
	err := r.chats.FindOneAndUpdate(ctx,
		bson.M{"roomId": roomID},
		bson.M{"$set": bson.M{counter: 0, "updatedAt": time.Now()}},
		opts,
	).Decode(&room)
	if err == mongo.ErrNoDocuments {
		return &entity.ChatRoom{RoomID: roomID, Messages: []entity.ChatMessage{}}, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to reset unread count", err)
	}

	if room.Messages == nil {
		room.Messages = []entity.ChatMessage{}
	}
	return &room, nil
}

func (r *mongoChatRepository) AppendMessage(ctx context.Context, identity repository.RoomIdentity, msg entity.ChatMessage) (*entity.ChatRoom, error) {
	// The recipient is the side opposite the sender.
	recipientCounter := "sellerUnreadCount"
	if msg.SenderType == entity.SideSeller {
		recipientCounter = "buyerUnreadCount"
	}

	now := time.Now()
	update := bson.M{
		"$setOnInsert": bson.M{
			"roomId":    identity.RoomID,
			"productId": identity.ProductID,
			"buyerId":   identity.BuyerID,
			"sellerId":  identity.SellerID,
			"createdAt": now,
		},
		"$push": bson.M{"messages": msg},
		"$set": bson.M{
			"lastMessage": msg,
			"updatedAt":   now,
		},
		"$inc": bson.M{recipientCounter: 1},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var room entity.ChatRoom
	err := r.chats.FindOneAndUpdate(ctx, bson.M{"roomId": identity.RoomID}, update, opts).Decode(&room)
	if err != nil {
		return nil, errors.Internal("Failed to save message", err)
	}
	return &room, nil
}

func (r *mongoChatRepository) ListRecentByUser(ctx context.Context, userID string) ([]*entity.ChatRoom, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"buyerId": userID},
			{"sellerId": userID},
		},
		// Self-chats are rejected on write, but legacy documents are
		// filtered out here as well.
		"$expr": bson.M{"$ne": []string{"$buyerId", "$sellerId"}},
	}

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.chats.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list chats", err)
	}
	defer cursor.Close(ctx)

	var rooms []*entity.ChatRoom
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, errors.Internal("Failed to decode chats", err)
	}
	return rooms, nil
}
