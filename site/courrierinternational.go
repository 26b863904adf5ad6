package site

import (
	"context"
	"net/url"
	"strings"

	"github.com/kiosque/kiosque"
)

// CourrierInternational handles courrierinternational.com. Login scrapes a
// Drupal form build id; articles carry an extra original_url header field
// pointing at the translated source; the weekly issue is downloadable as
// PDF from the magazine page.
type CourrierInternational struct {
	*Base
}

// NewCourrierInternational creates the courrierinternational.com handler.
func NewCourrierInternational(s *Session) kiosque.Site {
	return &CourrierInternational{Base: NewBase(s, Config{
		Name:     "courrierinternational",
		BaseURL:  "https://www.courrierinternational.com/",
		Aliases:  []string{"courrier"},
		LoginURL: "https://www.courrierinternational.com/login?destination=<front>",
		Login: FormLogin(func(ctx context.Context, b *Base) (string, url.Values, error) {
			resp, err := b.Client().Get(ctx, b.LoginURL())
			if err != nil {
				return "", nil, err
			}
			formID, err := hiddenInput(resp.Body, "form_build_id")
			if err != nil {
				return "", nil, err
			}
			creds := b.Credentials()
			return "", url.Values{
				"remember_me":        {"1"},
				"form_build_id":      {formID},
				"form_id":            {"user_login_block"},
				"op":                 {"Se+connecter"},
				"ci_promo_code_code": {""},
				"name":               {creds["username"]},
				"pass":               {creds["password"]},
			}, nil
		}),
		Article:    "div.article-text",
		StripAttrs: []string{"h3"},
		Remove:     []string{"div", "span.empty-author-name-short"},
	})}
}

// Author falls back to the byline nodes when the meta tag is absent.
func (s *CourrierInternational) Author(ctx context.Context, rawurl string) (string, error) {
	author, err := s.Base.Author(ctx, rawurl)
	if err != nil || author != "" {
		return author, err
	}

	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	for _, selector := range []string{"div.author-name-short", "p.author-name"} {
		if node := doc.Find(selector).First(); node.Length() > 0 {
			return strings.TrimSpace(node.Text()), nil
		}
	}
	return "", nil
}

// ExtraFields adds the original_url header entry for translated articles.
func (s *CourrierInternational) ExtraFields(ctx context.Context, rawurl string) ([]kiosque.Field, error) {
	doc, err := s.Page(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	href, _ := doc.Find("div.article-url-origin a").First().Attr("href")
	return []kiosque.Field{{Key: "original_url", Value: href}}, nil
}

// LatestIssueURL walks home page → weekly magazine page → PDF button.
func (s *CourrierInternational) LatestIssueURL(ctx context.Context) (string, error) {
	resp, err := s.Client().Get(ctx, s.BaseURL())
	if err != nil {
		return "", err
	}
	home, err := parseHTML(resp.Body)
	if err != nil {
		return "", err
	}
	pageURL, ok := home.Find("section.hebdo-section a").First().Attr("href")
	if !ok {
		return "", kiosque.Errorf(kiosque.EEXTRACTION, "no weekly issue link on %s", s.BaseURL())
	}

	resp, err = s.Client().Get(ctx, absoluteURL(s.BaseURL(), pageURL))
	if err != nil {
		return "", err
	}
	issue, err := parseHTML(resp.Body)
	if err != nil {
		return "", err
	}
	href, ok := issue.Find(`div.magazine-tools a[data-icon="file-pdf"]`).First().Attr("href")
	if !ok {
		return "", kiosque.Errorf(kiosque.EEXTRACTION, "no PDF download button on issue page %s", pageURL)
	}
	return absoluteURL(s.BaseURL(), href), nil
}
