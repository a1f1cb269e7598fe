package websocket

import (
	"context"
	"sync"

	"procurehub/pkg/logger"
)

// Manager tracks every live connection, the presence registry (userId to
// connections) and room membership. Presence is soft state: it is lost on
// restart, chat history is not.
type Manager struct {
	clients    map[string]*Client            // connID -> client
	presence   map[string]map[string]*Client // userID -> connID -> client
	rooms      map[string]map[string]*Client // roomID -> connID -> client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		presence:   make(map[string]map[string]*Client),
		rooms:      make(map[string]map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's register/unregister loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				logger.Debug("Connection registered: %s", client.ID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ID]; ok {
					delete(m.clients, client.ID)
					m.removeFromPresenceLocked(client)
					m.removeFromRoomsLocked(client)
				}
				m.mutex.Unlock()
				client.CloseSend()
				logger.Debug("Connection unregistered: %s", client.ID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Bind adds a connection to the user's presence set. Idempotent.
func (m *Manager) Bind(userID string, client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	conns, ok := m.presence[userID]
	if !ok {
		conns = make(map[string]*Client)
		m.presence[userID] = conns
	}
	conns[client.ID] = client
}

// Unbind removes a connection from the user's presence set and garbage
// collects the user key when the set becomes empty.
func (m *Manager) Unbind(userID string, client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if conns, ok := m.presence[userID]; ok {
		delete(conns, client.ID)
		if len(conns) == 0 {
			delete(m.presence, userID)
		}
	}
}

// ConnectionsFor returns every live connection the user currently holds.
func (m *Manager) ConnectionsFor(userID string) []*Client {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	conns := m.presence[userID]
	result := make([]*Client, 0, len(conns))
	for _, client := range conns {
		result = append(result, client)
	}
	return result
}

// JoinRoom adds the connection to the room's member set.
func (m *Manager) JoinRoom(roomID string, client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	members, ok := m.rooms[roomID]
	if !ok {
		members = make(map[string]*Client)
		m.rooms[roomID] = members
	}
	members[client.ID] = client
}

// LeaveRoom removes the connection from the room's member set.
func (m *Manager) LeaveRoom(roomID string, client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.removeFromRoomLocked(roomID, client)
}

// IsClientInRoom reports whether the connection is currently a member of
// the room. Used by notification fan-out to skip connections that will
// already receive the in-room broadcast.
func (m *Manager) IsClientInRoom(connID, roomID string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	members, ok := m.rooms[roomID]
	if !ok {
		return false
	}
	_, in := members[connID]
	return in
}

// BroadcastToRoom sends the message to every member of the room,
// including the sender.
func (m *Manager) BroadcastToRoom(roomID string, message []byte) {
	m.mutex.RLock()
	members := make([]*Client, 0, len(m.rooms[roomID]))
	for _, client := range m.rooms[roomID] {
		members = append(members, client)
	}
	m.mutex.RUnlock()

	for _, client := range members {
		m.SendToClient(client, message)
	}
}

// BroadcastToRoomExcept sends the message to every member of the room
// except the named connection.
func (m *Manager) BroadcastToRoomExcept(roomID, exceptConnID string, message []byte) {
	m.mutex.RLock()
	members := make([]*Client, 0, len(m.rooms[roomID]))
	for _, client := range m.rooms[roomID] {
		if client.ID != exceptConnID {
			members = append(members, client)
		}
	}
	m.mutex.RUnlock()

	for _, client := range members {
		m.SendToClient(client, message)
	}
}

// SendToClient queues a message on the client's send channel. The
// message is dropped rather than blocking the caller when the
// connection is stalled or already torn down. Callers may hold stale
// client pointers from a presence or room snapshot; TrySend makes that
// safe.
func (m *Manager) SendToClient(client *Client, message []byte) {
	if !client.TrySend(message) {
		logger.Warn("Dropping message for connection %s", client.ID)
	}
}

func (m *Manager) removeFromPresenceLocked(client *Client) {
	for userID, conns := range m.presence {
		if _, ok := conns[client.ID]; ok {
			delete(conns, client.ID)
			if len(conns) == 0 {
				delete(m.presence, userID)
			}
		}
	}
}

func (m *Manager) removeFromRoomsLocked(client *Client) {
	for roomID := range m.rooms {
		m.removeFromRoomLocked(roomID, client)
	}
}

func (m *Manager) removeFromRoomLocked(roomID string, client *Client) {
	if members, ok := m.rooms[roomID]; ok {
		delete(members, client.ID)
		if len(members) == 0 {
			delete(m.rooms, roomID)
		}
	}
}
