package site

import (
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/kiosque/kiosque"
)

// LeMonde handles lemonde.fr. Login POSTs the connection form with a CSRF
// token scraped from the login page; the article body lives in a nested
// content container whose tag differs between logged-in and anonymous
// renderings.
type LeMonde struct {
	*Base
}

// NewLeMonde creates the lemonde.fr handler.
func NewLeMonde(s *Session) kiosque.Site {
	return &LeMonde{Base: NewBase(s, Config{
		Name:     "lemonde",
		BaseURL:  "https://www.lemonde.fr/",
		Aliases:  []string{"lemonde"},
		LoginURL: "https://secure.lemonde.fr/sfuser/connexion",
		Login: FormLogin(func(ctx context.Context, b *Base) (string, url.Values, error) {
			resp, err := b.Client().Get(ctx, b.LoginURL())
			if err != nil {
				return "", nil, err
			}
			token, err := hiddenInput(resp.Body, "connection[_token]")
			if err != nil {
				return "", nil, err
			}
			creds := b.Credentials()
			return "", url.Values{
				"connection[mail]":           {creds["username"]},
				"connection[password]":       {creds["password"]},
				"connection[stay_connected]": {"1"},
				"connection[save]":           {""},
				"connection[_token]":         {token},
			}, nil
		}),
		StripAttrs: []string{"h2"},
		Remove: []string{
			"figure",
			"section.catcher", "section.author", "section.article__reactions",
			"div.dfp__inread",
		},
		PostClean: func(sel *goquery.Selection) {
			sel.Find("h3").Each(func(_ int, s *goquery.Selection) {
				Rename(s, "blockquote")
			})
		},
	})}
}

// Article handles the nested content containers: a logged-in page embeds a
// section inside the article element, an anonymous page has the section
// at the top level.
func (s *LeMonde) Article(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}

	sel := doc.Find("article.article__content").First()
	if sel.Length() == 0 {
		sel = doc.Find("section.article__content").First()
	} else if embedded := sel.Find("section.article__content").First(); embedded.Length() > 0 {
		sel = embedded
	}
	if sel.Length() == 0 {
		return "", kiosque.Errorf(kiosque.EEXTRACTION,
			"failed to extract article content from %s (lemonde handler)", rawurl)
	}
	return s.CleanHTML(sel)
}
