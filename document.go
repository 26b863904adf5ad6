package kiosque

import "context"

// Field is one entry of a document's metadata header. Fields are ordered;
// a field with an empty value is still rendered so the header shape stays
// stable even when a site does not expose the metadata.
type Field struct {
	Key   string
	Value string
}

// Document is the final rendered output: an ordered metadata header
// followed by the article body in markdown.
type Document struct {
	// URL the document was rendered from, after canonical rewrites.
	URL string

	// Fields holds the header entries in render order. The standard set is
	// title, author, date, url, description; handlers may add extra fields.
	Fields []Field

	// Body is the article content converted to markdown.
	Body string
}

// Field returns the value of the first header field with the given key,
// or an empty string when the field is absent.
func (d *Document) Field(key string) string {
	for _, f := range d.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// DocumentService renders documents from URLs or aliases.
type DocumentService interface {
	// RenderDocument resolves the input to a site handler, authenticates if
	// needed, and returns the rendered document. The header is always
	// complete; a missing article body is an EEXTRACTION error.
	RenderDocument(ctx context.Context, urlOrAlias string) (*Document, error)
}
