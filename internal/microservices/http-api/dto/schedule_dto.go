package dto

import "time"

// GenerateScheduleRequest: payload for creating a reading goal
type GenerateScheduleRequest struct {
	GoogleBooksID   string    `json:"google_books_id" binding:"required"`
	Start           time.Time `json:"start" binding:"required"`
	PagesPerDay     int       `json:"pages_per_day" binding:"required,min=1"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,min=1"`
}
