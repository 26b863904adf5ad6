package site

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kiosque/kiosque"
)

// loginActionPattern extracts the credential-POST target from Keycloak's
// React page config.
var loginActionPattern = regexp.MustCompile(`"loginAction":\s*"([^"]+)"`)

// UsineNouvelle handles usinenouvelle.com. Authentication goes through the
// Infopro Digital Keycloak SSO with OAuth2 + PKCE; the login action URL is
// embedded in the page's JavaScript config rather than a form.
type UsineNouvelle struct {
	*Base
}

// NewUsineNouvelle creates the usinenouvelle.com handler.
func NewUsineNouvelle(s *Session) kiosque.Site {
	return &UsineNouvelle{Base: NewBase(s, Config{
		Name:     "usinenouvelle",
		BaseURL:  "https://www.usinenouvelle.com/",
		LoginURL: "https://auth-industrie.infopro-digital.com/realms/industrie/protocol/openid-connect/auth",
		Login: PKCELogin(PKCEConfig{
			AuthURL:     "https://auth-industrie.infopro-digital.com/realms/industrie/protocol/openid-connect/auth",
			ClientID:    "un-front",
			RedirectURI: "https://www.usinenouvelle.com/",
			Scope:       "openid",
			Scrape: func(body []byte, finalURL string) (string, url.Values, error) {
				match := loginActionPattern.FindSubmatch(body)
				if match == nil {
					return "", nil, kiosque.Errorf(kiosque.EAUTH, "no loginAction in Keycloak response")
				}
				action := strings.ReplaceAll(string(match[1]), `\/`, "/")
				return action, url.Values{}, nil
			},
		}),
		DateMeta: []MetaRule{{Attr: "name", Values: []string{"date.modified"}}},
		Article:  "div.epAtcBody",
		Remove:   []string{"section"},
		PostClean: func(sel *goquery.Selection) {
			sel.Find("span.interTitre").Each(func(_ int, s *goquery.Selection) {
				Rename(s, "h2")
			})
			sel.Find("a.lien-contextuel").Each(func(_ int, s *goquery.Selection) {
				Rename(s, "span")
			})
		},
	})}
}

// Description reads the chapo paragraph; the page has no description meta.
func (s *UsineNouvelle) Description(ctx context.Context, rawurl string) (string, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("div.epArticleChapo").First().Text()), nil
}

// Author falls back to the visible byline when the meta tag is absent.
func (s *UsineNouvelle) Author(ctx context.Context, rawurl string) (string, error) {
	author, err := s.Base.Author(ctx, rawurl)
	if err != nil || author != "" {
		return author, err
	}
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("span.epMetaData__content__infos-name").First().Text()), nil
}
