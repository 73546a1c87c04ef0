package websocket

// Individual client connection handler.

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const ( // ping pong (2-way heartbeat) to keep connection alive
	WriteWait      = 10 * time.Second    // max time to write a message to the peer
	PongWait       = 60 * time.Second    // max time to wait for pong from peer, no pong = no connection
	PingPeriod     = (PongWait * 9) / 10 // send pings before the pong wait expires
	MaxMessageSize = 4096                // maximum message size allowed from peer
)

type Client struct {
	ID          string          // unique connection ID
	UserID      string          // user ID from auth token claims
	Username    string          // user name from auth token claims
	Conn        *websocket.Conn // WebSocket connection
	SendChannel chan []byte     // channel for outbound messages
	Hub         *Hub            // reference to the central Hub
}

func NewClient(id, userID, username string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		ID:          id,
		UserID:      userID,
		Username:    username,
		Conn:        conn,
		SendChannel: make(chan []byte, 256),
		Hub:         hub,
	}
}

// send queues a message for delivery. Slow consumers drop messages rather
// than block the hub.
func (c *Client) send(data []byte) {
	select {
	case c.SendChannel <- data:
	default:
		slog.Warn("websocket send buffer full, dropping message",
			"user_id", c.UserID, "client_id", c.ID)
	}
}

// ReadPump reads client events until the connection drops, then unregisters.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(MaxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(PongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(PongWait))
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read error", "user_id", c.UserID, "error", err)
			}
			return
		}

		event, err := EventFromJSON(data)
		if err != nil {
			slog.Warn("websocket bad event", "user_id", c.UserID, "error", err)
			continue
		}
		c.handleEvent(event)
	}
}

func (c *Client) handleEvent(event *Event) {
	switch event.Type {
	case EventJoinPost:
		var payload joinLeavePayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return
		}
		c.Hub.JoinPost(c, payload.PostID)
	case EventLeavePost:
		var payload joinLeavePayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return
		}
		c.Hub.LeavePost(c, payload.PostID)
	default:
		slog.Debug("websocket unhandled event", "type", event.Type, "user_id", c.UserID)
	}
}

// WritePump drains the send channel to the socket and keeps the connection
// alive with periodic pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(PingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.SendChannel:
			c.Conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if !ok {
				// Hub closed the channel
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
