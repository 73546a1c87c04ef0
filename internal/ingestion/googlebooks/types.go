package googlebooks

// Volume is the normalized book record the rest of the application works
// with. Image links are always https.
type Volume struct {
	GoogleBooksID string   `json:"google_books_id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description"`
	PageCount     int      `json:"page_count"`
	Categories    []string `json:"categories"`
	Thumbnail     string   `json:"thumbnail"`
	CoverImage    string   `json:"cover_image"`
	PublishedDate string   `json:"published_date"`
	Publisher     string   `json:"publisher"`
}

// Raw API response shapes, trimmed to the fields we read.

type volumesResponse struct {
	TotalItems int              `json:"totalItems"`
	Items      []volumeResource `json:"items"`
}

type volumeResource struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title         string     `json:"title"`
	Authors       []string   `json:"authors"`
	Description   string     `json:"description"`
	PageCount     int        `json:"pageCount"`
	Categories    []string   `json:"categories"`
	PublishedDate string     `json:"publishedDate"`
	Publisher     string     `json:"publisher"`
	ImageLinks    imageLinks `json:"imageLinks"`
}

type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
	Small          string `json:"small"`
	Medium         string `json:"medium"`
	Large          string `json:"large"`
}
