package site

import (
	"context"
	"strings"
	"time"

	"github.com/kiosque/kiosque"
)

// AviationWeek handles aviationweek.com. Authentication goes through Auth0
// Universal Login with OAuth2 Authorization Code + PKCE; the state value is
// scraped from the provider's login form.
type AviationWeek struct {
	*Base
}

// NewAviationWeek creates the aviationweek.com handler.
func NewAviationWeek(s *Session) kiosque.Site {
	return &AviationWeek{Base: NewBase(s, Config{
		Name:     "aviationweek",
		BaseURL:  "https://aviationweek.com/",
		Aliases:  []string{"awst"},
		LoginURL: "https://login.aviationweek.com/authorize",
		Login: PKCELogin(PKCEConfig{
			AuthURL:      "https://login.aviationweek.com/authorize",
			ClientID:     "PZ-a176tAbl1SuTbp9u25uYaC4WqpWhh",
			RedirectURI:  "https://aviationweek.com/auth0/callback",
			Scope:        "openid email profile",
			ResponseMode: "query",
		}),
		TitleMeta:       []MetaRule{{Attr: "name", Values: []string{"title"}}},
		DescriptionMeta: []MetaRule{{Attr: "name", Values: []string{"description"}}},
		Remove:          []string{"div.dfp-ad", "div.dfp-tag"},
	})}
}

// Article selects the body container inside the article element.
func (s *AviationWeek) Article(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	sel := doc.Find("article div.article__body").First()
	if sel.Length() == 0 {
		return "", kiosque.Errorf(kiosque.EEXTRACTION,
			"failed to extract article content from %s (aviationweek handler)", rawurl)
	}
	return s.CleanHTML(sel)
}

// Date parses the visible date node ("January 2, 2006" style) since the
// page exposes no machine-readable date meta.
func (s *AviationWeek) Date(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	node := doc.Find("span.article__date").First()
	if node.Length() == 0 {
		return "", nil
	}
	t, err := time.Parse("January 2, 2006", strings.TrimSpace(node.Text()))
	if err != nil {
		return "", nil
	}
	return t.Format("2006-01-02"), nil
}

// Author reads the teaser byline.
func (s *AviationWeek) Author(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("a.author--teaser__name").First().Text()), nil
}
