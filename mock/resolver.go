package mock

import (
	"context"

	"github.com/kiosque/kiosque"
)

var _ kiosque.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of kiosque.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, urlOrAlias string) (kiosque.Site, error)
}

func (r *Resolver) Resolve(ctx context.Context, urlOrAlias string) (kiosque.Site, error) {
	return r.ResolveFn(ctx, urlOrAlias)
}
