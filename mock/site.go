package mock

import (
	"context"

	"github.com/kiosque/kiosque"
)

var _ kiosque.Site = (*Site)(nil)

// Site is a mock implementation of kiosque.Site.
type Site struct {
	NameFn           func() string
	BaseURLFn        func() string
	AliasesFn        func() []string
	LoginFn          func(ctx context.Context) error
	TitleFn          func(ctx context.Context, url string) (string, error)
	AuthorFn         func(ctx context.Context, url string) (string, error)
	DateFn           func(ctx context.Context, url string) (string, error)
	DescriptionFn    func(ctx context.Context, url string) (string, error)
	URLFn            func(url string) string
	ArticleFn        func(ctx context.Context, url string) (string, error)
	LatestIssueURLFn func(ctx context.Context) (string, error)
}

func (s *Site) Name() string      { return s.NameFn() }
func (s *Site) BaseURL() string   { return s.BaseURLFn() }
func (s *Site) Aliases() []string { return s.AliasesFn() }

func (s *Site) Login(ctx context.Context) error { return s.LoginFn(ctx) }

func (s *Site) Title(ctx context.Context, url string) (string, error) {
	return s.TitleFn(ctx, url)
}

func (s *Site) Author(ctx context.Context, url string) (string, error) {
	return s.AuthorFn(ctx, url)
}

func (s *Site) Date(ctx context.Context, url string) (string, error) {
	return s.DateFn(ctx, url)
}

func (s *Site) Description(ctx context.Context, url string) (string, error) {
	return s.DescriptionFn(ctx, url)
}

func (s *Site) URL(url string) string { return s.URLFn(url) }

func (s *Site) Article(ctx context.Context, url string) (string, error) {
	return s.ArticleFn(ctx, url)
}

func (s *Site) LatestIssueURL(ctx context.Context) (string, error) {
	return s.LatestIssueURLFn(ctx)
}
