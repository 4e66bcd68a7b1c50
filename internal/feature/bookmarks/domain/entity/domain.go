// Package entity defines the domain entities for the bookmarks feature.
package entity

import (
	"time"

	authentity "github.com/neswanths/Blinky/internal/feature/auth/domain/entity"
)

// Domain is a named folder grouping bookmarks. Every domain belongs to
// exactly one user; deleting the user or the domain cascades to everything
// underneath it at the database level.
type Domain struct {
	// ID is the unique identifier for the domain.
	ID uint `gorm:"primaryKey"`

	// Name is the display name of the folder (1-50 characters).
	Name string `gorm:"size:50;not null;index"`

	// UserID is the owning user. It is set at creation and never reassigned.
	UserID uint `gorm:"not null;index"`

	// User backs the user_id foreign key with ON DELETE CASCADE.
	User authentity.User `gorm:"constraint:OnDelete:CASCADE"`

	// Bookmarks are the saved links grouped under this domain.
	Bookmarks []Bookmark `gorm:"constraint:OnDelete:CASCADE"`

	// CreatedAt is the timestamp when the domain was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the domain was last updated.
	UpdatedAt time.Time
}
