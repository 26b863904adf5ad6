package site

import (
	"context"
	"strings"

	"github.com/kiosque/kiosque"
)

// TheGuardian handles theguardian.com anonymously.
type TheGuardian struct {
	*Base
}

// NewTheGuardian creates the theguardian.com handler.
func NewTheGuardian(s *Session) kiosque.Site {
	return &TheGuardian{Base: NewBase(s, Config{
		Name:    "theguardian",
		BaseURL: "https://www.theguardian.com/",
		Aliases: []string{"guardian"},
		Article: "div.article-body-viewer-selector",
		Remove:  []string{"figure", "div"},
	})}
}

// Author reads the rel=author link.
func (s *TheGuardian) Author(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find(`a[rel="author"]`).First().Text()), nil
}
