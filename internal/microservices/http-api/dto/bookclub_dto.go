package dto

// CreateClubRequest: payload for starting a book club
type CreateClubRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
}

// UpdateClubRequest: editable club fields, nil means unchanged
type UpdateClubRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CoverImage  *string `json:"cover_image"`
}
