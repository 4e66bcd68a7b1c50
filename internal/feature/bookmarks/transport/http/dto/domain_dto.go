// Package dto defines data transfer objects for the bookmarks feature's HTTP transport layer.
package dto

// DomainCreateReq represents the request body for POST /domains.
// The name length limits mirror the stored column (1-50 characters).
type DomainCreateReq struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// DomainRenameReq represents the request body for PUT /domains/:id.
type DomainRenameReq struct {
	Name string `json:"name" binding:"required"`
}

// DomainRes represents a domain with its nested bookmarks.
type DomainRes struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Bookmarks []BookmarkRes `json:"bookmarks"`
}
