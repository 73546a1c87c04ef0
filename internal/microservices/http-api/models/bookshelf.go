package models

import "time"

// Bookshelf statuses
const (
	ShelfStatusWantToRead = "want_to_read"
	ShelfStatusReading    = "reading"
	ShelfStatusRead       = "read"
)

// BookshelfItem is a user's relationship to one novel: shelf status plus
// reading progress. Unique per (user, novel).
type BookshelfItem struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string     `gorm:"type:uuid;not null;uniqueIndex:idx_user_novel" json:"user_id"`
	NovelID      int64      `gorm:"not null;uniqueIndex:idx_user_novel" json:"novel_id"`
	Status       string     `gorm:"not null" json:"status"` // want_to_read, reading, read
	Rating       *int       `json:"rating,omitempty"`       // 1-5
	TotalPages   int        `gorm:"default:0" json:"total_pages"`
	PagesRead    int        `gorm:"default:0" json:"pages_read"`
	DateAdded    time.Time  `gorm:"autoCreateTime" json:"date_added"`
	DateStarted  *time.Time `json:"date_started,omitempty"`
	DateFinished *time.Time `json:"date_finished,omitempty"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Novel *Novel `gorm:"foreignKey:NovelID;constraint:OnDelete:CASCADE;" json:"novel,omitempty"`
}

func (BookshelfItem) TableName() string {
	return "bookshelf_items"
}
