package dto

// OpenConversationRequest: start or reopen a thread with another user
type OpenConversationRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// SendMessageRequest: payload for a direct message
type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// RespondRequest: accept or reject a message request
type RespondRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}
