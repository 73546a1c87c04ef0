package models

import "time"

// ScheduleEvent is one day of a reading goal. Events generated together for
// one book share a GroupID; deleting the goal removes the whole group.
type ScheduleEvent struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        string    `gorm:"type:uuid;not null;index" json:"user_id"`
	GroupID       string    `gorm:"type:uuid;not null;index" json:"group_id"`
	BookGoogleID  string    `gorm:"not null" json:"book_google_id"`
	BookTitle     string    `gorm:"not null" json:"book_title"`
	BookThumbnail string    `json:"book_thumbnail"`
	Title         string    `gorm:"not null" json:"title"` // e.g. `Read: The Hobbit`
	Start         time.Time `gorm:"not null;index" json:"start"`
	End           time.Time `gorm:"not null;index" json:"end"`
	PagesToRead   int       `gorm:"not null" json:"pages_to_read"`
	Completed     bool      `gorm:"default:false" json:"completed"`
	FollowUpSent  bool      `gorm:"default:false" json:"follow_up_sent"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
}

func (ScheduleEvent) TableName() string {
	return "schedule_events"
}
