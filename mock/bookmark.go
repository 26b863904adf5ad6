package mock

import (
	"context"

	"github.com/kiosque/kiosque"
)

var _ kiosque.BookmarkService = (*BookmarkService)(nil)

// BookmarkService is a mock implementation of kiosque.BookmarkService.
type BookmarkService struct {
	ListFn    func(ctx context.Context) ([]kiosque.Bookmark, error)
	ArchiveFn func(ctx context.Context, id string) error
}

func (s *BookmarkService) List(ctx context.Context) ([]kiosque.Bookmark, error) {
	return s.ListFn(ctx)
}

func (s *BookmarkService) Archive(ctx context.Context, id string) error {
	return s.ArchiveFn(ctx, id)
}
