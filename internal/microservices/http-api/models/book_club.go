package models

import "time"

type BookClub struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CoverImage  string    `gorm:"default:''" json:"cover_image"`
	CreatedByID string    `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations
	CreatedBy *User  `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Members   []User `gorm:"many2many:book_club_members;constraint:OnDelete:CASCADE;" json:"members,omitempty"`
	Posts     []Post `gorm:"many2many:book_club_posts;constraint:OnDelete:CASCADE;" json:"posts,omitempty"`
}

func (BookClub) TableName() string {
	return "book_clubs"
}
