package site

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kiosque/kiosque"
)

// LesEchos handles lesechos.fr. Login POSTs credentials to the auth API;
// session cookies arrive on the response and stay in the shared jar. The
// subscriber text lives in a paywalled container inside the first section.
type LesEchos struct {
	*Base
}

// NewLesEchos creates the lesechos.fr handler.
func NewLesEchos(s *Session) kiosque.Site {
	return &LesEchos{Base: NewBase(s, Config{
		Name:     "lesechos",
		BaseURL:  "https://www.lesechos.fr/",
		LoginURL: "https://api.lesechos.fr/api/v1/auth/login",
		Login: StaticFormLogin(func(creds map[string]string) url.Values {
			return url.Values{
				"email":    {creds["username"]},
				"password": {creds["password"]},
			}
		}),
		StripAttrs: []string{"h3"},
		Remove:     []string{"div"},
		PostClean: func(sel *goquery.Selection) {
			sel.Find("a, img").Each(func(_ int, s *goquery.Selection) {
				s.RemoveAttr("class")
			})
		},
	})}
}

// Article selects the paywalled body inside the first section.
func (s *LesEchos) Article(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	sel := doc.Find("section div.post-paywall").First()
	if sel.Length() == 0 {
		return "", kiosque.Errorf(kiosque.EEXTRACTION,
			"failed to extract article content from %s (lesechos handler)", rawurl)
	}
	return s.CleanHTML(sel)
}

// Author reads the byline adjacent to the article section.
func (s *LesEchos) Author(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	byline := doc.Find("section").First().Prev()
	if byline.Length() == 0 {
		return "", nil
	}
	return strings.TrimPrefix(strings.TrimSpace(byline.Text()), "Par "), nil
}
