package websocket

import (
	"encoding/json"
	"log/slog"
	"time"
)

// Event protocol definitions.
//
// The socket is a push channel plus room membership. Direct messages are
// sent over the HTTP API, which saves them durably and then pushes a
// getMessage event to the recipient, so there is no client -> server
// sendMessage event here.

type EventType string

const (
	// client -> server
	EventJoinPost  EventType = "joinPostRoom"  // watch a post's comment stream
	EventLeavePost EventType = "leavePostRoom" // stop watching

	// server -> client
	EventNewUser         EventType = "newUser"         // a user came online
	EventOnlineUsers     EventType = "getOnlineUsers"  // full presence snapshot
	EventGetMessage      EventType = "getMessage"      // new direct message
	EventMessagesSeen    EventType = "messagesSeen"    // other side read the thread
	EventRequestAccepted EventType = "requestAccepted" // message request accepted
	EventNewComment      EventType = "newComment"      // comment on a watched post
	EventNewReply        EventType = "newReply"        // reply on a watched post
	EventCommentUpdated  EventType = "commentUpdated"  // like count or deletion
	EventNotification    EventType = "getNotification" // new notification
)

// Event is the envelope for everything crossing the socket.
type Event struct {
	Type      EventType       `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// joinLeavePayload is the body of joinPostRoom and leavePostRoom events.
type joinLeavePayload struct {
	PostID int64 `json:"post_id"`
}

// NewEvent wraps a payload in an envelope, marshalled and ready to send.
func NewEvent(eventType EventType, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			slog.Error("Failed to marshal event payload", "type", eventType, "error", err)
			return nil, err
		}
		raw = data
	}

	event := Event{
		Type:      eventType,
		Payload:   raw,
		Timestamp: time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal event", "type", eventType, "error", err)
		return nil, err
	}
	return data, nil
}

// EventFromJSON parses an inbound client event.
func EventFromJSON(data []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
