package models

import "time"

// Notification types
const (
	NotificationLike             = "like"
	NotificationComment          = "comment"
	NotificationFollow           = "follow"
	NotificationReply            = "reply"
	NotificationLikeComment      = "like_comment"
	NotificationScheduleReminder = "schedule_reminder"
	NotificationScheduleFollowUp = "schedule_follow_up"
)

type Notification struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipientID string    `gorm:"type:uuid;not null;index" json:"recipient_id"`
	SenderID    string    `gorm:"type:uuid;not null" json:"sender_id"`
	Type        string    `gorm:"not null" json:"type"`
	EntityID    string    `gorm:"not null" json:"entity_id"` // post, comment, user or event the notification points at
	Title       string    `json:"title"`
	Read        bool      `gorm:"default:false" json:"read"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Recipient *User `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE;" json:"recipient,omitempty"`
	Sender    *User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE;" json:"sender,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
