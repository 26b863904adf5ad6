package site_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosque/kiosque"
	"github.com/kiosque/kiosque/mock"
	"github.com/kiosque/kiosque/site"
)

func staticValue(v string) func(context.Context, string) (string, error) {
	return func(context.Context, string) (string, error) { return v, nil }
}

func TestRenderer_RenderDocument(t *testing.T) {
	t.Parallel()

	handler := &mock.Site{
		NameFn:        func() string { return "example" },
		TitleFn:       staticValue("A Title"),
		AuthorFn:      staticValue("An Author"),
		DateFn:        staticValue("2024-05-01"),
		DescriptionFn: staticValue("A description."),
		URLFn:         func(u string) string { return u },
		ArticleFn:     staticValue("<article><p>Body.</p></article>"),
	}
	resolver := &mock.Resolver{
		ResolveFn: func(_ context.Context, urlOrAlias string) (kiosque.Site, error) {
			return handler, nil
		},
	}
	converter := &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			assert.Equal(t, "<article><p>Body.</p></article>", html)
			return "Body.\n", nil
		},
	}

	r := &site.Renderer{Resolver: resolver, Converter: converter}
	doc, err := r.RenderDocument(context.Background(), "http://example.com/a")
	require.NoError(t, err)

	// The input scheme is normalized before it reaches the handler.
	assert.Equal(t, "https://example.com/a", doc.URL)
	assert.Equal(t, "Body.\n", doc.Body)

	var keys []string
	for _, f := range doc.Fields {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"title", "author", "date", "url", "description"}, keys)
	assert.Equal(t, "A Title", doc.Field("title"))
	assert.Equal(t, "https://example.com/a", doc.Field("url"))
}

// extraFieldsSite adds fields between url and description.
type extraFieldsSite struct {
	*mock.Site
	extra []kiosque.Field
}

func (s *extraFieldsSite) ExtraFields(context.Context, string) ([]kiosque.Field, error) {
	return s.extra, nil
}

func TestRenderer_RenderDocument_ExtraFields(t *testing.T) {
	t.Parallel()

	handler := &extraFieldsSite{
		Site: &mock.Site{
			TitleFn:       staticValue("T"),
			AuthorFn:      staticValue(""),
			DateFn:        staticValue("2024-05-01"),
			DescriptionFn: staticValue("D"),
			URLFn:         func(u string) string { return u },
			ArticleFn:     staticValue("<article/>"),
		},
		extra: []kiosque.Field{{Key: "original_url", Value: "https://origin.example/a"}},
	}
	r := &site.Renderer{
		Resolver: &mock.Resolver{
			ResolveFn: func(context.Context, string) (kiosque.Site, error) { return handler, nil },
		},
		Converter: &mock.Converter{
			ConvertFn: func(string) (string, error) { return "", nil },
		},
	}

	doc, err := r.RenderDocument(context.Background(), "https://example.com/a")
	require.NoError(t, err)

	var keys []string
	for _, f := range doc.Fields {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"title", "author", "date", "url", "original_url", "description"}, keys)
}

func TestRenderer_RenderDocument_ExtractionFails(t *testing.T) {
	t.Parallel()

	handler := &mock.Site{
		TitleFn:       staticValue("T"),
		AuthorFn:      staticValue(""),
		DateFn:        staticValue(""),
		DescriptionFn: staticValue(""),
		URLFn:         func(u string) string { return u },
		ArticleFn: func(_ context.Context, u string) (string, error) {
			return "", kiosque.Errorf(kiosque.EEXTRACTION, "failed to extract article content from %s", u)
		},
	}
	r := &site.Renderer{
		Resolver: &mock.Resolver{
			ResolveFn: func(context.Context, string) (kiosque.Site, error) { return handler, nil },
		},
		Converter: &mock.Converter{
			ConvertFn: func(string) (string, error) { return "", nil },
		},
	}

	_, err := r.RenderDocument(context.Background(), "https://example.com/a")
	require.Error(t, err)
	assert.Equal(t, kiosque.EEXTRACTION, kiosque.ErrorCode(err))
}

func TestRenderer_RenderDocument_Unsupported(t *testing.T) {
	t.Parallel()

	r := &site.Renderer{
		Resolver: &mock.Resolver{
			ResolveFn: func(_ context.Context, urlOrAlias string) (kiosque.Site, error) {
				return nil, kiosque.Errorf(kiosque.EUNSUPPORTED, "unsupported URL or alias: %q", urlOrAlias)
			},
		},
		Converter: &mock.Converter{},
	}

	_, err := r.RenderDocument(context.Background(), "https://unknown.example/a")
	require.Error(t, err)
	assert.Equal(t, kiosque.EUNSUPPORTED, kiosque.ErrorCode(err))
}
