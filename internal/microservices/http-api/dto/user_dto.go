package dto

// HidePostRequest: negative feed feedback on a post
type HidePostRequest struct {
	PostID int64  `json:"post_id" binding:"required"`
	Reason string `json:"reason"`
}
