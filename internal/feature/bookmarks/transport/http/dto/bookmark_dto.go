package dto

// BookmarkCreateReq represents the request body for POST /bookmarks.
// The URL is stored as-is; no format validation is applied.
type BookmarkCreateReq struct {
	URL      string `json:"url" binding:"required"`
	Title    string `json:"title" binding:"required"`
	DomainID uint   `json:"domain_id" binding:"required"`
}

// BookmarkRetitleReq represents the request body for PUT /bookmarks/:id.
type BookmarkRetitleReq struct {
	Title string `json:"title" binding:"required"`
}

// BookmarkRes represents a single bookmark.
type BookmarkRes struct {
	ID    uint   `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}
