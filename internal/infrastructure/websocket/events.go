package websocket

import (
	"time"

	"procurehub/internal/domain/entity"
)

// Inbound event types.
const (
	EventIdentify       = "identify"
	EventJoinRoom       = "join_room"
	EventGetChatHistory = "get_chat_history"
	EventSendMessage    = "send_message"
	EventTypingStart    = "typing_start"
	EventTypingStop     = "typing_stop"
	EventLeaveRoom      = "leave_room"
	EventGetRecentChats = "get_recent_chats"
)

// Outbound event types.
const (
	EventError             = "error"
	EventUserJoined        = "user_joined"
	EventRoomJoined        = "room_joined"
	EventChatHistory       = "chat_history"
	EventReceiveMessage    = "receive_message"
	EventLastMessageUpdate = "chat_last_message_update"
	EventNewMessageNotify  = "new_message_notification"
	EventUserTyping        = "user_typing"
	EventUserLeft          = "user_left"
	EventRoomLeft          = "room_left"
	EventRecentChats       = "recent_chats"
)

// Envelope is the JSON frame exchanged on the socket.
type Envelope struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// Inbound payloads.

type IdentifyData struct {
	UserID string `json:"userId"`
}

type JoinRoomData struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	SellerID  string `json:"sellerId"`
	UserType  string `json:"userType"`
	BuyerID   string `json:"buyerId,omitempty"`
}

type ChatHistoryRequest struct {
	ProductID string `json:"productId"`
	SellerID  string `json:"sellerId"`
	BuyerID   string `json:"buyerId"`
}

type SendMessageData struct {
	ProductID  string `json:"productId"`
	SellerID   string `json:"sellerId"`
	SenderID   string `json:"senderId"`
	SenderType string `json:"senderType"`
	Message    string `json:"message"`
	BuyerID    string `json:"buyerId,omitempty"`
}

type TypingData struct {
	ProductID string `json:"productId"`
	UserID    string `json:"userId"`
	SellerID  string `json:"sellerId"`
	BuyerID   string `json:"buyerId,omitempty"`
}

type LeaveRoomData struct {
	RoomID string `json:"roomId,omitempty"`
}

type RecentChatsRequest struct {
	UserID string `json:"userId"`
}

// Outbound payloads.

type ErrorData struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type UserJoinedData struct {
	UserID   string `json:"userId"`
	UserType string `json:"userType"`
	Message  string `json:"message"`
}

type RoomJoinedData struct {
	RoomID   string `json:"roomId"`
	BuyerID  string `json:"buyerId"`
	SellerID string `json:"sellerId"`
	Message  string `json:"message"`
}

type ChatHistoryData struct {
	RoomID            string               `json:"roomId"`
	Messages          []entity.ChatMessage `json:"messages"`
	LastMessage       *entity.ChatMessage  `json:"lastMessage"`
	MessageCount      int                  `json:"messageCount"`
	BuyerUnreadCount  int                  `json:"buyerUnreadCount"`
	SellerUnreadCount int                  `json:"sellerUnreadCount"`
}

type ReceiveMessageData struct {
	ProductID         string              `json:"productId"`
	Message           string              `json:"message"`
	SenderID          string              `json:"senderId"`
	SenderType        string              `json:"senderType"`
	Timestamp         time.Time           `json:"timestamp"`
	RoomID            string              `json:"roomId"`
	LastMessage       *entity.ChatMessage `json:"lastMessage"`
	MessageCount      int                 `json:"messageCount"`
	BuyerUnreadCount  int                 `json:"buyerUnreadCount"`
	SellerUnreadCount int                 `json:"sellerUnreadCount"`
}

type LastMessageUpdateData struct {
	RoomID      string              `json:"roomId"`
	LastMessage *entity.ChatMessage `json:"lastMessage"`
}

type NotificationData struct {
	RoomID      string              `json:"roomId"`
	LastMessage *entity.ChatMessage `json:"lastMessage"`
	ProductID   string              `json:"productId"`
	SellerID    string              `json:"sellerId"`
	BuyerID     string              `json:"buyerId"`
}

type UserTypingData struct {
	UserID   string `json:"userId"`
	IsTyping bool   `json:"isTyping"`
}

type UserLeftData struct {
	UserID   string `json:"userId"`
	UserType string `json:"userType"`
	Message  string `json:"message"`
}

type RoomLeftData struct {
	RoomID  string `json:"roomId"`
	Message string `json:"message"`
}

type RecentChatsData struct {
	Chats []*entity.RecentChat `json:"chats"`
}
