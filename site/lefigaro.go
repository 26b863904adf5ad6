package site

import (
	"context"
	"strings"

	"github.com/kiosque/kiosque"
)

// LeFigaro handles lefigaro.fr anonymously. The date comes from the
// article's <time> element rather than a meta tag.
type LeFigaro struct {
	*Base
}

// NewLeFigaro creates the lefigaro.fr handler.
func NewLeFigaro(s *Session) kiosque.Site {
	return &LeFigaro{Base: NewBase(s, Config{
		Name:    "lefigaro",
		BaseURL: "https://www.lefigaro.fr/",
		Article: "div.fig-body",
		Remove:  []string{"div", "svg", "p.fig-body-link"},
	})}
}

// Author reads the visible byline link.
func (s *LeFigaro) Author(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("a.fig-content-metas__author").First().Text()), nil
}

// Date reads the datetime attribute of the first <time> element.
func (s *LeFigaro) Date(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	datetime, _ := doc.Find("time").First().Attr("datetime")
	return NormalizeDate(datetime), nil
}
