package dto

// SetShelfRequest: put a catalog book on the shelf with a status
type SetShelfRequest struct {
	GoogleBooksID string `json:"google_books_id" binding:"required"`
	Status        string `json:"status" binding:"required,oneof=want_to_read reading read"`
}

// ProgressRequest: set the absolute page position
type ProgressRequest struct {
	PagesRead *int `json:"pages_read" binding:"required,min=0"`
}

// RateRequest: rate a shelved book
type RateRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}
