package site

import (
	"context"
	"net/url"

	"github.com/kiosque/kiosque"
)

// Mediapart handles mediapart.fr. The login form needs no scraped tokens;
// the article container nests differently depending on whether the session
// is authenticated.
type Mediapart struct {
	*Base
}

// NewMediapart creates the mediapart.fr handler.
func NewMediapart(s *Session) kiosque.Site {
	return &Mediapart{Base: NewBase(s, Config{
		Name:     "mediapart",
		BaseURL:  "https://www.mediapart.fr/",
		Aliases:  []string{"mediapart"},
		LoginURL: "https://www.mediapart.fr/login_check",
		Login: StaticFormLogin(func(creds map[string]string) url.Values {
			return url.Values{
				"name":     {creds["username"]},
				"password": {creds["password"]},
				"op":       {"Se+connecter"},
			}
		}),
		AuthorMeta: []MetaRule{{Attr: "name", Values: []string{"author"}}},
		Remove:     []string{"div"},
	})}
}

// Article unwraps the nested content containers: anonymous pages embed a
// second content-article div, authenticated pages a page-pane div.
func (s *Mediapart) Article(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}

	sel := doc.Find("div.content-article").First()
	if sel.Length() == 0 {
		return "", kiosque.Errorf(kiosque.EEXTRACTION,
			"failed to extract article content from %s (mediapart handler)", rawurl)
	}
	if embedded := sel.Find("div.content-article").First(); embedded.Length() > 0 {
		sel = embedded
	}
	if pane := sel.Find("div.page-pane").First(); pane.Length() > 0 {
		sel = pane
	}
	return s.CleanHTML(sel)
}
