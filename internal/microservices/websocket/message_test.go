package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEvent_RoundTrip(t *testing.T) {
	data, err := NewEvent(EventNewComment, map[string]any{"post_id": 42})
	assert.NoError(t, err)

	event, err := EventFromJSON(data)
	assert.NoError(t, err)
	assert.Equal(t, EventNewComment, event.Type)
	assert.False(t, event.Timestamp.IsZero())

	var payload struct {
		PostID int64 `json:"post_id"`
	}
	assert.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, int64(42), payload.PostID)
}

func TestNewEvent_NilPayload(t *testing.T) {
	data, err := NewEvent(EventOnlineUsers, nil)
	assert.NoError(t, err)

	event, err := EventFromJSON(data)
	assert.NoError(t, err)
	assert.Empty(t, event.Payload)
}

func TestEventFromJSON_Invalid(t *testing.T) {
	_, err := EventFromJSON([]byte("not json"))
	assert.Error(t, err)
}
