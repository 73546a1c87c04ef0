package dto

// CreatePostRequest: payload for publishing a post
type CreatePostRequest struct {
	GoogleBooksID string `json:"google_books_id"`
	Content       string `json:"content" binding:"required"`
	PostType      string `json:"post_type" binding:"required,oneof=review discussion quote"`
	ImageURL      string `json:"image_url"`
}

// CreateCommentRequest: payload for commenting on a post. A parent comment
// makes it a reply.
type CreateCommentRequest struct {
	Content         string `json:"content" binding:"required"`
	ParentCommentID *int64 `json:"parent_comment_id"`
}
