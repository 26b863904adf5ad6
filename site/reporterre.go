package site

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kiosque/kiosque"
)

// Reporterre handles reporterre.net anonymously. The visible date is a
// French-language string, returned as-is.
type Reporterre struct {
	*Base
}

// NewReporterre creates the reporterre.net handler.
func NewReporterre(s *Session) kiosque.Site {
	return &Reporterre{Base: NewBase(s, Config{
		Name:    "reporterre",
		BaseURL: "https://reporterre.net/",
		Remove:  []string{"small", "dl", "div", "aside", "span.spip_note_ref"},
		PostClean: func(sel *goquery.Selection) {
			sel.Find("a").Each(func(_ int, s *goquery.Selection) {
				s.RemoveAttr("class")
			})
		},
	})}
}

// Article selects the text container inside the article element.
func (s *Reporterre) Article(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	sel := doc.Find("article div.texte").First()
	if sel.Length() == 0 {
		return "", kiosque.Errorf(kiosque.EEXTRACTION,
			"failed to extract article content from %s (reporterre handler)", rawurl)
	}
	return s.CleanHTML(sel)
}

// Author reads the byline link.
func (s *Reporterre) Author(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("a.lienauteur").First().Text()), nil
}

// Date reads the visible date node up to the first comma.
func (s *Reporterre) Date(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	date, _, _ := strings.Cut(doc.Find("span.date").First().Text(), ",")
	return strings.TrimSpace(date), nil
}
