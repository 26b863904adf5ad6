// Package fs writes rendered documents and downloaded issues to disk.
package fs

import (
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/kiosque/kiosque"
)

// FormatDocument renders a document as text: the header fields between
// --- delimiters, a blank line, then the markdown body. Every field is
// emitted even when its value is empty, so the header shape is stable.
func FormatDocument(doc *kiosque.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	for _, f := range doc.Fields {
		b.WriteString(f.Key)
		b.WriteString(":")
		if f.Value != "" {
			b.WriteString(" ")
			b.WriteString(f.Value)
		}
		b.WriteString("\n")
	}
	b.WriteString("---\n\n")
	b.WriteString(doc.Body)
	return b.String()
}

// DocumentFilename derives the output filename {date}-{slug}.md from the
// document's date field and the last path segment of its URL.
func DocumentFilename(doc *kiosque.Document) string {
	return doc.Field("date") + "-" + slug(doc.URL) + ".md"
}

// slug returns the last path segment of a URL without its extension.
func slug(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "article"
	}
	base := path.Base(strings.TrimSuffix(u.Path, "/"))
	if base == "." || base == "/" {
		return "article"
	}
	return strings.TrimSuffix(base, path.Ext(base))
}

// Writer persists documents and PDF issues under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer rooted at baseDir ("." for the working
// directory).
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes a formatted document. An empty filename derives
// {date}-{slug}.md from the document. Returns the path written.
func (w *Writer) WriteDocument(doc *kiosque.Document, filename string) (string, error) {
	if filename == "" {
		filename = DocumentFilename(doc)
	}
	full := filepath.Join(w.baseDir, filename)
	if err := os.WriteFile(full, []byte(FormatDocument(doc)), 0o644); err != nil {
		return "", err
	}
	return full, nil
}

// WriteIssue streams a downloaded issue to disk, forcing a .pdf suffix.
// Returns the path written.
func (w *Writer) WriteIssue(dl *kiosque.Download) (string, error) {
	defer dl.Body.Close()

	name := dl.Filename
	if name == "" || name == "." || name == "/" {
		name = "issue"
	}
	name = strings.TrimSuffix(name, path.Ext(name)) + ".pdf"

	full := filepath.Join(w.baseDir, name)
	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, dl.Body); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return full, nil
}
