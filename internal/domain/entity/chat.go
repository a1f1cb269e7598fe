package entity

import "time"

// User roles within a chat room.
const (
	SideBuyer  = "buyer"
	SideSeller = "seller"
)

// ChatMessage is one entry in a room's append-only message log.
type ChatMessage struct {
	SenderID   string    `json:"senderId" bson:"senderId"`
	SenderType string    `json:"senderType" bson:"senderType"` // "buyer" or "seller"
	Message    string    `json:"message" bson:"message"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

// ChatRoom is the persisted chat document, one per unique
// (productId, buyerId, sellerId) triple. The roomId is derived and
// carries a unique index; it is never user supplied.
type ChatRoom struct {
	RoomID            string        `json:"roomId" bson:"roomId"`
	ProductID         string        `json:"productId" bson:"productId"`
	BuyerID           string        `json:"buyerId" bson:"buyerId"`
	SellerID          string        `json:"sellerId" bson:"sellerId"`
	Messages          []ChatMessage `json:"messages" bson:"messages"`
	LastMessage       *ChatMessage  `json:"lastMessage" bson:"lastMessage"`
	BuyerUnreadCount  int           `json:"buyerUnreadCount" bson:"buyerUnreadCount"`
	SellerUnreadCount int           `json:"sellerUnreadCount" bson:"sellerUnreadCount"`
	CreatedAt         time.Time     `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt         time.Time     `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// RecentChat is a room joined with the display data the chat list needs:
// the caller's role and unread counter plus product and counterpart
// projections.
type RecentChat struct {
	RoomID       string          `json:"roomId"`
	ProductID    string          `json:"productId"`
	BuyerID      string          `json:"buyerId"`
	SellerID     string          `json:"sellerId"`
	LastMessage  *ChatMessage    `json:"lastMessage"`
	MessageCount int             `json:"messageCount"`
	UnreadCount  int             `json:"unreadCount"`
	Role         string          `json:"role"`
	Product      *ProductSummary `json:"product,omitempty"`
	Counterpart  *UserSummary    `json:"counterpart,omitempty"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// UnreadCountFor returns the unread counter belonging to the given side.
func (r *ChatRoom) UnreadCountFor(side string) int {
	if side == SideSeller {
		return r.SellerUnreadCount
	}
	return r.BuyerUnreadCount
}

// OtherParticipant returns the userId of the participant opposite the
// given sender side.
func (r *ChatRoom) OtherParticipant(senderType string) string {
	if senderType == SideBuyer {
		return r.SellerID
	}
	return r.BuyerID
}
