package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"procurehub/internal/domain/entity"
	"procurehub/internal/domain/repository"
	"procurehub/internal/infrastructure/ratelimit"
	"procurehub/pkg/logger"
)

// ChatService is the store-facing contract the router dispatches to. The
// chat usecase implements it.
type ChatService interface {
	// History returns the room document, empty defaults included.
	History(ctx context.Context, roomID string) (*entity.ChatRoom, error)

	// OpenRoom resets the opening side's unread counter and returns the
	// updated room.
	OpenRoom(ctx context.Context, roomID, side string) (*entity.ChatRoom, error)

	// Append atomically persists a message into the room.
	Append(ctx context.Context, identity repository.RoomIdentity, msg entity.ChatMessage) (*entity.ChatRoom, error)

	// RecentChats lists the user's rooms enriched with display data.
	RecentChats(ctx context.Context, userID string) ([]*entity.RecentChat, error)
}

// RequirementApprover is the external collaborator called fire-and-forget
// when a chat room is joined. Its outcome is only ever logged.
type RequirementApprover interface {
	ApproveOnChatStart(ctx context.Context, productID, buyerID, sellerID string) (updated bool, reason string, err error)
}

// Router dispatches inbound socket events to their handlers and owns the
// corresponding broadcast and notification logic.
type Router struct {
	manager  *Manager
	chats    ChatService
	approver RequirementApprover
	limiter  *ratelimit.RateLimiter
}

func NewRouter(manager *Manager, chats ChatService, approver RequirementApprover) *Router {
	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	return &Router{
		manager:  manager,
		chats:    chats,
		approver: approver,
		limiter:  limiter,
	}
}

type inboundEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// HandleClientMessage decodes one inbound frame and dispatches it.
func (rt *Router) HandleClientMessage(client *Client, raw []byte) {
	var env inboundEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		rt.sendError(client, "Invalid message format", err)
		return
	}

	switch env.Type {
	case EventIdentify:
		rt.handleIdentify(client, env.Data)
	case EventJoinRoom:
		rt.handleJoinRoom(client, env.Data)
	case EventGetChatHistory:
		rt.handleGetChatHistory(client, env.Data)
	case EventSendMessage:
		rt.handleSendMessage(client, env.Data)
	case EventTypingStart:
		rt.handleTyping(client, env.Data, true)
	case EventTypingStop:
		rt.handleTyping(client, env.Data, false)
	case EventLeaveRoom:
		rt.handleLeaveRoom(client, env.Data)
	case EventGetRecentChats:
		rt.handleGetRecentChats(client, env.Data)
	default:
		rt.sendError(client, fmt.Sprintf("Unknown message type '%s'", env.Type), nil)
	}
}

// handleIdentify binds the connection to a user in the presence
// registry. A missing userId is silently ignored.
func (rt *Router) handleIdentify(client *Client, raw json.RawMessage) {
	var data IdentifyData
	if err := json.Unmarshal(raw, &data); err != nil || data.UserID == "" {
		return
	}

	client.Session.UserID = data.UserID
	rt.manager.Bind(data.UserID, client)
	logger.Debug("Connection %s identified as user %s", client.ID, data.UserID)
}

func (rt *Router) handleJoinRoom(client *Client, raw json.RawMessage) {
	var data JoinRoomData
	if err := json.Unmarshal(raw, &data); err != nil {
		rt.sendError(client, "Invalid join_room payload", err)
		return
	}

	if data.UserID == "" || data.ProductID == "" || data.SellerID == "" || data.UserType == "" {
		rt.sendError(client, "Missing required fields: userId, productId, sellerId, or userType", nil)
		return
	}

	buyerID := ResolveBuyerID(data.UserType, data.UserID, data.BuyerID, client.Session.BuyerID)
	if buyerID == data.SellerID {
		rt.sendError(client, "Buyer and seller cannot be the same user", nil)
		return
	}

	roomID := ResolveRoomID(data.ProductID, buyerID, data.SellerID)

	// Joining while already in a room is an implicit leave-then-join; a
	// connection holds at most one active chat room.
	if prev := client.Session.RoomID; prev != "" && prev != roomID {
		rt.manager.LeaveRoom(prev, client)
		rt.broadcastExcept(prev, client.ID, EventUserLeft, UserLeftData{
			UserID:   client.Session.UserID,
			UserType: client.Session.UserType,
			Message:  fmt.Sprintf("%s has left the chat", client.Session.UserType),
		})
	}

	rt.manager.Bind(data.UserID, client)
	rt.manager.JoinRoom(roomID, client)

	client.Session.UserID = data.UserID
	client.Session.UserType = data.UserType
	client.Session.ProductID = data.ProductID
	client.Session.SellerID = data.SellerID
	client.Session.BuyerID = buyerID
	client.Session.RoomID = roomID

	rt.broadcastExcept(roomID, client.ID, EventUserJoined, UserJoinedData{
		UserID:   data.UserID,
		UserType: data.UserType,
		Message:  fmt.Sprintf("%s has joined the chat", data.UserType),
	})

	rt.sendEvent(client, EventRoomJoined, RoomJoinedData{
		RoomID:   roomID,
		BuyerID:  buyerID,
		SellerID: data.SellerID,
		Message:  fmt.Sprintf("You have joined the chat for product %s", data.ProductID),
	})

	// Opening the room resets the opener's own unread counter before the
	// history snapshot is taken.
	room, err := rt.chats.OpenRoom(context.Background(), roomID, data.UserType)
	if err != nil {
		rt.sendError(client, "Failed to fetch chat history", err)
		return
	}

	rt.sendEvent(client, EventChatHistory, historyPayload(room))

	// Fire-and-forget: requirement approval never gates the join.
	go rt.approveRequirement(data.ProductID, buyerID, data.SellerID)
}

func (rt *Router) approveRequirement(productID, buyerID, sellerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	updated, reason, err := rt.approver.ApproveOnChatStart(ctx, productID, buyerID, sellerID)
	if err != nil {
		logger.Warn("Requirement approval failed for product %s: %v", productID, err)
		return
	}
	if !updated {
		logger.Debug("Requirement not approved for product %s: %s", productID, reason)
		return
	}
	logger.Info("Requirement approved on chat start for product %s", productID)
}

func (rt *Router) handleGetChatHistory(client *Client, raw json.RawMessage) {
	var data ChatHistoryRequest
	if err := json.Unmarshal(raw, &data); err != nil {
		rt.sendError(client, "Invalid get_chat_history payload", err)
		return
	}

	if data.ProductID == "" || data.SellerID == "" || data.BuyerID == "" {
		rt.sendError(client, "Missing required fields for fetching chat history", nil)
		return
	}
	if data.BuyerID == data.SellerID {
		rt.sendError(client, "Buyer and seller cannot be the same user", nil)
		return
	}

	roomID := ResolveRoomID(data.ProductID, data.BuyerID, data.SellerID)

	room, err := rt.chats.History(context.Background(), roomID)
	if err != nil {
		rt.sendError(client, "Failed to fetch chat history", err)
		return
	}

	rt.sendEvent(client, EventChatHistory, historyPayload(room))
}

func (rt *Router) handleSendMessage(client *Client, raw json.RawMessage) {
	var data SendMessageData
	if err := json.Unmarshal(raw, &data); err != nil {
		rt.sendError(client, "Invalid send_message payload", err)
		return
	}

	if data.ProductID == "" || data.SellerID == "" || data.SenderID == "" || data.SenderType == "" || data.Message == "" {
		rt.sendError(client, "Missing required fields for sending message", nil)
		return
	}

	buyerID := ResolveBuyerID(data.SenderType, data.SenderID, data.BuyerID, client.Session.BuyerID)
	if buyerID == data.SellerID {
		rt.sendError(client, "Buyer and seller cannot be the same user", nil)
		return
	}

	if allowed, wait := rt.limiter.Allow(data.SenderID, "send_message"); !allowed {
		rt.sendError(client, fmt.Sprintf("Rate limit exceeded, retry in %s", wait.Round(time.Second)), nil)
		return
	}

	roomID := ResolveRoomID(data.ProductID, buyerID, data.SellerID)

	msg := entity.ChatMessage{
		SenderID:   data.SenderID,
		SenderType: data.SenderType,
		Message:    data.Message,
		Timestamp:  time.Now(),
	}

	// Persistence completes before any broadcast: nobody observes a
	// message that is not durably recorded.
	room, err := rt.chats.Append(context.Background(), repository.RoomIdentity{
		RoomID:    roomID,
		ProductID: data.ProductID,
		BuyerID:   buyerID,
		SellerID:  data.SellerID,
	}, msg)
	if err != nil {
		rt.sendError(client, "Failed to save message", err)
		return
	}

	rt.broadcast(roomID, EventReceiveMessage, ReceiveMessageData{
		ProductID:         data.ProductID,
		Message:           data.Message,
		SenderID:          data.SenderID,
		SenderType:        data.SenderType,
		Timestamp:         msg.Timestamp,
		RoomID:            roomID,
		LastMessage:       room.LastMessage,
		MessageCount:      len(room.Messages),
		BuyerUnreadCount:  room.BuyerUnreadCount,
		SellerUnreadCount: room.SellerUnreadCount,
	})

	rt.broadcast(roomID, EventLastMessageUpdate, LastMessageUpdateData{
		RoomID:      roomID,
		LastMessage: room.LastMessage,
	})

	recipient := room.OtherParticipant(data.SenderType)
	rt.notifyAbsent(recipient, roomID, NotificationData{
		RoomID:      roomID,
		LastMessage: room.LastMessage,
		ProductID:   data.ProductID,
		SellerID:    data.SellerID,
		BuyerID:     buyerID,
	})
}

// notifyAbsent pushes an out-of-band alert to every live connection of
// the recipient that is not a member of the room. Best-effort: the
// unread counter in the store is the authoritative signal.
func (rt *Router) notifyAbsent(recipientID, roomID string, payload NotificationData) {
	for _, conn := range rt.manager.ConnectionsFor(recipientID) {
		if rt.manager.IsClientInRoom(conn.ID, roomID) {
			continue
		}
		rt.sendEvent(conn, EventNewMessageNotify, payload)
	}
}

// handleTyping relays typing indicators. Best-effort: malformed or
// incomplete payloads and over-limit bursts are dropped without an
// error event.
func (rt *Router) handleTyping(client *Client, raw json.RawMessage, isTyping bool) {
	var data TypingData
	if err := json.Unmarshal(raw, &data); err != nil {
		return
	}
	if data.ProductID == "" || data.UserID == "" || data.SellerID == "" {
		return
	}

	buyerID := ResolveBuyerID(client.Session.UserType, data.UserID, data.BuyerID, client.Session.BuyerID)
	if buyerID == "" || buyerID == data.SellerID {
		return
	}

	if allowed, _ := rt.limiter.Allow(data.UserID, "typing"); !allowed {
		return
	}

	roomID := ResolveRoomID(data.ProductID, buyerID, data.SellerID)

	rt.broadcastExcept(roomID, client.ID, EventUserTyping, UserTypingData{
		UserID:   data.UserID,
		IsTyping: isTyping,
	})
}

func (rt *Router) handleLeaveRoom(client *Client, raw json.RawMessage) {
	var data LeaveRoomData
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			rt.sendError(client, "Invalid leave_room payload", err)
			return
		}
	}

	roomID := data.RoomID
	if roomID == "" {
		roomID = client.Session.RoomID
	}
	if roomID == "" {
		rt.sendError(client, "No active room to leave", nil)
		return
	}

	rt.manager.LeaveRoom(roomID, client)

	rt.broadcastExcept(roomID, client.ID, EventUserLeft, UserLeftData{
		UserID:   client.Session.UserID,
		UserType: client.Session.UserType,
		Message:  fmt.Sprintf("%s has left the chat", client.Session.UserType),
	})

	client.ClearRoom()

	rt.sendEvent(client, EventRoomLeft, RoomLeftData{
		RoomID:  roomID,
		Message: "You have left the chat",
	})
}

func (rt *Router) handleGetRecentChats(client *Client, raw json.RawMessage) {
	var data RecentChatsRequest
	if err := json.Unmarshal(raw, &data); err != nil {
		rt.sendError(client, "Invalid get_recent_chats payload", err)
		return
	}
	if data.UserID == "" {
		rt.sendError(client, "Missing required field: userId", nil)
		return
	}

	chats, err := rt.chats.RecentChats(context.Background(), data.UserID)
	if err != nil {
		rt.sendError(client, "Failed to fetch recent chats", err)
		return
	}

	rt.sendEvent(client, EventRecentChats, RecentChatsData{Chats: chats})
}

// HandleDisconnect tears down the connection's presence and announces
// the departure to any room it held.
func (rt *Router) HandleDisconnect(client *Client, reason string) {
	if roomID := client.Session.RoomID; roomID != "" {
		rt.manager.LeaveRoom(roomID, client)
		rt.broadcastExcept(roomID, client.ID, EventUserLeft, UserLeftData{
			UserID:   client.Session.UserID,
			UserType: client.Session.UserType,
			Message:  fmt.Sprintf("%s has left the chat", client.Session.UserType),
		})
	}

	if userID := client.Session.UserID; userID != "" {
		rt.manager.Unbind(userID, client)
	}

	logger.Debug("Connection %s disconnected: %s", client.ID, reason)
}

func historyPayload(room *entity.ChatRoom) ChatHistoryData {
	return ChatHistoryData{
		RoomID:            room.RoomID,
		Messages:          room.Messages,
		LastMessage:       room.LastMessage,
		MessageCount:      len(room.Messages),
		BuyerUnreadCount:  room.BuyerUnreadCount,
		SellerUnreadCount: room.SellerUnreadCount,
	}
}

func (rt *Router) sendEvent(client *Client, eventType string, data interface{}) {
	raw, err := marshalEnvelope(eventType, data)
	if err != nil {
		logger.Error("Failed to marshal %s event: %v", eventType, err)
		return
	}
	rt.manager.SendToClient(client, raw)
}

func (rt *Router) sendError(client *Client, message string, err error) {
	data := ErrorData{Message: message}
	if err != nil {
		data.Error = err.Error()
	}
	rt.sendEvent(client, EventError, data)
}

func (rt *Router) broadcast(roomID, eventType string, data interface{}) {
	raw, err := marshalEnvelope(eventType, data)
	if err != nil {
		logger.Error("Failed to marshal %s event: %v", eventType, err)
		return
	}
	rt.manager.BroadcastToRoom(roomID, raw)
}

func (rt *Router) broadcastExcept(roomID, exceptConnID, eventType string, data interface{}) {
	raw, err := marshalEnvelope(eventType, data)
	if err != nil {
		logger.Error("Failed to marshal %s event: %v", eventType, err)
		return
	}
	rt.manager.BroadcastToRoomExcept(roomID, exceptConnID, raw)
}

func marshalEnvelope(eventType string, data interface{}) ([]byte, error) {
	return json.Marshal(Envelope{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
