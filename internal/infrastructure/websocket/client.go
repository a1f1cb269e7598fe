package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"procurehub/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second

	maxMessageSize = 4096
)

// Session holds the per-connection chat context. All fields are empty
// until a successful join_room and are cleared again on leave_room.
type Session struct {
	UserID    string
	UserType  string
	ProductID string
	SellerID  string
	BuyerID   string
	RoomID    string
}

// Client represents one live WebSocket connection.
type Client struct {
	ID      string // connection id, unique per connection
	Conn    *websocket.Conn
	Send    chan []byte
	Session Session

	sendMu sync.Mutex
	closed bool
}

// TrySend queues a message for the write pump without blocking. It
// reports false when the message was dropped, either because the
// connection is shutting down or because the channel is full. Safe to
// call concurrently with CloseSend.
func (c *Client) TrySend(message []byte) bool {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- message:
		return true
	default:
		return false
	}
}

// CloseSend marks the connection as shutting down and closes the send
// channel so the write pump exits. Idempotent. Sends that race this
// call are dropped by TrySend instead of panicking.
func (c *Client) CloseSend() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
}

// ClearRoom resets the session's room fields, keeping the identity bound
// by identify.
func (c *Client) ClearRoom() {
	c.Session.UserType = ""
	c.Session.ProductID = ""
	c.Session.SellerID = ""
	c.Session.BuyerID = ""
	c.Session.RoomID = ""
}

// ReadPump reads messages from the connection and hands them to the
// router. It owns teardown: when the read loop exits the router is told
// about the disconnect and the connection is unregistered.
func (c *Client) ReadPump(rt *Router) {
	defer func() {
		rt.HandleDisconnect(c, "read loop closed")
		rt.manager.Unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error on connection %s: %v", c.ID, err)
			}
			break
		}

		rt.HandleClientMessage(c, message)
	}
}

// WritePump drains the send channel onto the connection and keeps it
// alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
