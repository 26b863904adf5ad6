package kiosque

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be a cleaned article fragment.
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
