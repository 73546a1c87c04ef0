package models

import "time"

// Novel is the canonical book record, keyed by its Google Books volume ID.
// Rows are created lazily the first time a user shelves or posts about a book
// and repaired opportunistically when fields are missing.
type Novel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	GoogleBooksID string    `gorm:"uniqueIndex;not null" json:"google_books_id"`
	Title         string    `gorm:"not null" json:"title"`
	Authors       []string  `gorm:"serializer:json" json:"authors"`
	Description   string    `gorm:"type:text" json:"description"`
	PageCount     int       `json:"page_count"`
	Categories    []string  `gorm:"serializer:json" json:"categories"`
	Thumbnail     string    `json:"thumbnail"`
	CoverImage    string    `json:"cover_image"`
	PublishedDate string    `json:"published_date"`
	Publisher     string    `json:"publisher"`
	CreatedByID   *string   `gorm:"type:uuid" json:"created_by_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Novel) TableName() string {
	return "novels"
}
