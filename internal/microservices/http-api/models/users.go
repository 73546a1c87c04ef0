package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             string     `gorm:"primaryKey;type:uuid" json:"id"`
	Name           string     `gorm:"default:''" json:"name"`
	Username       string     `gorm:"uniqueIndex;not null" json:"username"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	Password       string     `gorm:"column:password_hash;not null" json:"-"` // Not shown in JSON
	IsVerified     bool       `gorm:"default:false" json:"is_verified"`
	ProfilePicture string     `gorm:"default:''" json:"profile_picture"`
	CoverPhoto     string     `gorm:"default:''" json:"cover_photo"`
	Bio            string     `gorm:"size:160;default:''" json:"bio"`
	Location       string     `gorm:"default:''" json:"location"`
	Website        string     `gorm:"default:''" json:"website"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	LastSeen       time.Time  `gorm:"autoCreateTime" json:"last_seen"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Social graph: a single user_follows join table read from both ends
	Following []*User `gorm:"many2many:user_follows;foreignKey:ID;joinForeignKey:FollowerID;references:ID;joinReferences:FolloweeID" json:"following,omitempty"`
	Followers []*User `gorm:"many2many:user_follows;foreignKey:ID;joinForeignKey:FolloweeID;references:ID;joinReferences:FollowerID" json:"followers,omitempty"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}

// PostFeedback records a user's "show me less of this" signal on a post.
// Posts with feedback are excluded from that user's personalized feed.
type PostFeedback struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	PostID    int64     `gorm:"not null;index" json:"post_id"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PostFeedback) TableName() string {
	return "post_feedback"
}
