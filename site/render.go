package site

import (
	"context"

	"github.com/kiosque/kiosque"
)

// Ensure Renderer implements kiosque.DocumentService at compile time.
var _ kiosque.DocumentService = (*Renderer)(nil)

// Renderer assembles documents: it resolves the input to a handler, reads
// the header fields through the handler's accessors, extracts and cleans
// the article body, and converts it to markdown.
type Renderer struct {
	Resolver  kiosque.Resolver
	Converter kiosque.Converter
}

// RenderDocument renders the article at the given URL into a document.
// Header fields are each independently optional; a missing article body
// fails the whole render.
func (r *Renderer) RenderDocument(ctx context.Context, urlOrAlias string) (*kiosque.Document, error) {
	handler, err := r.Resolver.Resolve(ctx, urlOrAlias)
	if err != nil {
		return nil, err
	}

	rawurl := NormalizeURL(urlOrAlias)
	canonical := handler.URL(rawurl)

	var fields []kiosque.Field
	for _, entry := range []struct {
		key string
		get func(context.Context, string) (string, error)
	}{
		{"title", handler.Title},
		{"author", handler.Author},
		{"date", handler.Date},
	} {
		value, err := entry.get(ctx, rawurl)
		if err != nil {
			return nil, err
		}
		fields = append(fields, kiosque.Field{Key: entry.key, Value: value})
	}
	fields = append(fields, kiosque.Field{Key: "url", Value: canonical})

	if adder, ok := handler.(kiosque.FieldAdder); ok {
		extra, err := adder.ExtraFields(ctx, rawurl)
		if err != nil {
			return nil, err
		}
		fields = append(fields, extra...)
	}

	description, err := handler.Description(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	fields = append(fields, kiosque.Field{Key: "description", Value: description})

	body, err := handler.Article(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	markdown, err := r.Converter.Convert(body)
	if err != nil {
		return nil, err
	}

	return &kiosque.Document{
		URL:    canonical,
		Fields: fields,
		Body:   markdown,
	}, nil
}
