// Package usecase implements the business logic for the bookmarks feature.
package usecase

import "errors"

var (
	// ErrDomainNotFound is returned when a domain is absent or is owned by a
	// different user. The two cases are deliberately indistinguishable so
	// that domain IDs cannot be probed.
	ErrDomainNotFound = errors.New("domain not found")

	// ErrBookmarkNotFound is returned when a bookmark does not exist.
	ErrBookmarkNotFound = errors.New("bookmark not found")

	// ErrNotDomainOwner is returned when a bookmark exists but its parent
	// domain belongs to a different user. Unlike the domain paths, bookmark
	// paths expose this as a distinct authorization failure.
	ErrNotDomainOwner = errors.New("not authorized to access this bookmark")
)
