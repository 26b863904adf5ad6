package kiosque

import (
	"context"
	"time"
)

// Bookmark is one "read later" entry from a bookmark service.
type Bookmark struct {
	// ID identifies the bookmark within its service.
	ID string

	// Title is the service-provided title, which may be empty.
	Title string

	// URL is the bookmarked page.
	URL string

	// Excerpt is a short service-provided summary, if any.
	Excerpt string

	// Tags are service-side labels.
	Tags []string

	// Created is when the bookmark was added.
	Created time.Time

	// Source names the originating service (e.g. "raindrop", "github").
	Source string
}

// BookmarkService lists and archives bookmarks from one service.
// Implementations are thin typed HTTP wrappers; archive semantics are
// service-specific (delete a raindrop, unstar a repository).
type BookmarkService interface {
	List(ctx context.Context) ([]Bookmark, error)
	Archive(ctx context.Context, id string) error
}
