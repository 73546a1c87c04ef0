package websocket

// Central hub managing all connections, presence and post rooms.
// Each WebSocket connection runs its own read and write goroutines; the hub
// guards the shared maps with a mutex.

import (
	"log/slog"
	"sync"
)

type Hub struct {
	mu sync.RWMutex

	// all open connections
	clients map[*Client]bool

	// presence: one user can hold several connections (tabs, devices)
	byUser map[string]map[*Client]bool

	// post rooms: connections watching a post's comment stream
	postRooms map[int64]map[*Client]bool

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:   make(map[*Client]bool),
		byUser:    make(map[string]map[*Client]bool),
		postRooms: make(map[int64]map[*Client]bool),
		logger:    logger,
	}
}

// Register adds a connection. The first connection of a user announces them
// online and everyone gets a fresh presence snapshot.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	conns := h.byUser[c.UserID]
	if conns == nil {
		conns = make(map[*Client]bool)
		h.byUser[c.UserID] = conns
	}
	firstConn := len(conns) == 0
	conns[c] = true
	h.mu.Unlock()

	h.logger.Info("websocket client connected", "user_id", c.UserID, "client_id", c.ID)

	if firstConn {
		h.broadcast(EventNewUser, map[string]any{"user_id": c.UserID})
	}
	h.broadcast(EventOnlineUsers, h.OnlineUserIDs())
}

// Unregister drops a connection. When a user's last connection goes away
// the presence snapshot is broadcast again.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if !h.clients[c] {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	close(c.SendChannel)

	lastConn := false
	if conns := h.byUser[c.UserID]; conns != nil {
		delete(conns, c)
		if len(conns) == 0 {
			delete(h.byUser, c.UserID)
			lastConn = true
		}
	}
	for postID, room := range h.postRooms {
		delete(room, c)
		if len(room) == 0 {
			delete(h.postRooms, postID)
		}
	}
	h.mu.Unlock()

	h.logger.Info("websocket client disconnected", "user_id", c.UserID, "client_id", c.ID)

	if lastConn {
		h.broadcast(EventOnlineUsers, h.OnlineUserIDs())
	}
}

// JoinPost subscribes a connection to a post's comment stream.
func (h *Hub) JoinPost(c *Client, postID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.postRooms[postID]
	if room == nil {
		room = make(map[*Client]bool)
		h.postRooms[postID] = room
	}
	room[c] = true
}

// LeavePost unsubscribes a connection from a post's comment stream.
func (h *Hub) LeavePost(c *Client, postID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if room := h.postRooms[postID]; room != nil {
		delete(room, c)
		if len(room) == 0 {
			delete(h.postRooms, postID)
		}
	}
}

// OnlineUserIDs returns the IDs of every user with at least one connection.
func (h *Hub) OnlineUserIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.byUser))
	for userID := range h.byUser {
		ids = append(ids, userID)
	}
	return ids
}

// EmitToUser sends an event to every connection of one user.
func (h *Hub) EmitToUser(userID string, event string, payload any) {
	data, err := NewEvent(EventType(event), payload)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.byUser[userID] {
		client.send(data)
	}
}

// EmitToPost sends an event to every connection watching a post.
func (h *Hub) EmitToPost(postID int64, event string, payload any) {
	data, err := NewEvent(EventType(event), payload)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.postRooms[postID] {
		client.send(data)
	}
}

func (h *Hub) broadcast(eventType EventType, payload any) {
	data, err := NewEvent(eventType, payload)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		client.send(data)
	}
}
