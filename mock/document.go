package mock

import (
	"context"

	"github.com/kiosque/kiosque"
)

var _ kiosque.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of kiosque.DocumentService.
type DocumentService struct {
	RenderDocumentFn func(ctx context.Context, urlOrAlias string) (*kiosque.Document, error)
}

func (s *DocumentService) RenderDocument(ctx context.Context, urlOrAlias string) (*kiosque.Document, error) {
	return s.RenderDocumentFn(ctx, urlOrAlias)
}
