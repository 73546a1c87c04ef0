package models

import "time"

type Comment struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          string    `gorm:"type:uuid;not null;index" json:"user_id"`
	PostID          int64     `gorm:"not null;index" json:"post_id"`
	Content         string    `gorm:"not null;type:text" json:"content"`
	ParentCommentID *int64    `gorm:"index" json:"parent_comment_id,omitempty"` // nil for top-level comments
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Post  *Post  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;" json:"post,omitempty"`
	Likes []User `gorm:"many2many:comment_likes;constraint:OnDelete:CASCADE;" json:"likes,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
