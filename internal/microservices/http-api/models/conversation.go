package models

import "time"

// Conversation statuses
const (
	ConversationPending  = "pending"
	ConversationAccepted = "accepted"
	ConversationRejected = "rejected"
)

// Conversation is a two-party message thread with request/accept/reject
// semantics. A rejected conversation can only be re-requested after a
// 30-day cooldown measured from the rejection timestamp.
type Conversation struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberA     string    `gorm:"type:uuid;not null;index" json:"member_a"`
	MemberB     string    `gorm:"type:uuid;not null;index" json:"member_b"`
	RequesterID string    `gorm:"type:uuid;not null" json:"requester_id"`
	Status      string    `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// HasMember reports whether the user is one of the two participants.
func (c *Conversation) HasMember(userID string) bool {
	return c.MemberA == userID || c.MemberB == userID
}

// OtherMember returns the participant that is not the given user.
func (c *Conversation) OtherMember(userID string) string {
	if c.MemberA == userID {
		return c.MemberB
	}
	return c.MemberA
}

type Message struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID int64     `gorm:"not null;index" json:"conversation_id"`
	SenderID       string    `gorm:"type:uuid;not null" json:"sender_id"`
	Text           string    `gorm:"not null;type:text" json:"text"`
	IsRead         bool      `gorm:"default:false" json:"is_read"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	Conversation *Conversation `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE;" json:"conversation,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}
