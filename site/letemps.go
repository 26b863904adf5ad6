package site

import (
	"context"
	"strings"

	"github.com/kiosque/kiosque"
)

// LeTemps handles letemps.ch anonymously.
type LeTemps struct {
	*Base
}

// NewLeTemps creates the letemps.ch handler.
func NewLeTemps(s *Session) kiosque.Site {
	return &LeTemps{Base: NewBase(s, Config{
		Name:     "letemps",
		BaseURL:  "https://www.letemps.ch/",
		DateMeta: []MetaRule{{Attr: "name", Values: []string{"article:published_time"}}},
		Remove:   []string{"span"},
	})}
}

// Author reads the author profile link.
func (s *LeTemps) Author(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("a.author-profile").First().Text()), nil
}

// Article selects the inner div of the body container.
func (s *LeTemps) Article(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	sel := doc.Find("div.body_content div").First()
	if sel.Length() == 0 {
		return "", kiosque.Errorf(kiosque.EEXTRACTION,
			"failed to extract article content from %s (letemps handler)", rawurl)
	}
	return s.CleanHTML(sel)
}
