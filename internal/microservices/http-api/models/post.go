package models

import "time"

// Post types
const (
	PostTypeReview     = "review"
	PostTypeDiscussion = "discussion"
	PostTypeQuote      = "quote"
)

type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	NovelID   *int64    `gorm:"index" json:"novel_id,omitempty"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	PostType  string    `gorm:"not null" json:"post_type"` // review, discussion, quote
	ImageURL  string    `gorm:"default:''" json:"image_url"`
	IsDeleted bool      `gorm:"default:false;index" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Novel *Novel `gorm:"foreignKey:NovelID;constraint:OnDelete:CASCADE;" json:"novel,omitempty"`
	Likes []User `gorm:"many2many:post_likes;constraint:OnDelete:CASCADE;" json:"likes,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}
