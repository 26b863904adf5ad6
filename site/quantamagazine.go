package site

import (
	"context"
	"strings"

	"github.com/kiosque/kiosque"
)

// QuantaMagazine handles quantamagazine.org anonymously.
type QuantaMagazine struct {
	*Base
}

// NewQuantaMagazine creates the quantamagazine.org handler.
func NewQuantaMagazine(s *Session) kiosque.Site {
	return &QuantaMagazine{Base: NewBase(s, Config{
		Name:    "quantamagazine",
		BaseURL: "https://www.quantamagazine.org/",
		Aliases: []string{"quanta"},
		Remove:  []string{"div"},
	})}
}

// Article selects the inner div of the post content section.
func (s *QuantaMagazine) Article(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	sel := doc.Find("div.post__content__section div").First()
	if sel.Length() == 0 {
		return "", kiosque.Errorf(kiosque.EEXTRACTION,
			"failed to extract article content from %s (quantamagazine handler)", rawurl)
	}
	return s.CleanHTML(sel)
}

// Author reads the sidebar byline.
func (s *QuantaMagazine) Author(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("div.sidebar__author h3").First().Text()), nil
}
