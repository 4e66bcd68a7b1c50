package entity

import "time"

// Bookmark is a single saved link. It belongs to exactly one domain; the URL
// is stored as an opaque string without format validation.
type Bookmark struct {
	// ID is the unique identifier for the bookmark.
	ID uint `gorm:"primaryKey"`

	// URL is the saved link.
	URL string `gorm:"not null"`

	// Title is the display title for the link.
	Title string `gorm:"size:255;not null"`

	// DomainID is the owning domain. Ownership checks walk this foreign key
	// up to the domain's user on every request.
	DomainID uint `gorm:"not null;index"`

	// CreatedAt is the timestamp when the bookmark was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the bookmark was last updated.
	UpdatedAt time.Time
}
