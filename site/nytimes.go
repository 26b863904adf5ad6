package site

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kiosque/kiosque"
)

// paywallPhrases mark paragraphs injected around the gated article text.
var paywallPhrases = []string{
	"We are having trouble retrieving",
	"Please enable JavaScript",
	"Thank you for your patience while we verify",
	"Already a subscriber",
	"Want all of The Times",
	"Log in",
	"Subscribe",
}

// paywallClassKeywords mark container divs that belong to the metering
// machinery rather than the article.
var paywallClassKeywords = []string{"paywall", "subscription", "opttrunc", "meter", "gate"}

// NYTimes handles nytimes.com. The site's anti-bot protection blocks
// automated logins, so authentication injects a NYT-S session cookie taken
// from the configuration (copied out of a logged-in browser).
type NYTimes struct {
	*Base
}

// NewNYTimes creates the nytimes.com handler.
func NewNYTimes(s *Session) kiosque.Site {
	return &NYTimes{Base: NewBase(s, Config{
		Name:     "nytimes",
		BaseURL:  "https://www.nytimes.com/",
		Aliases:  []string{"nyt"},
		LoginURL: "https://myaccount.nytimes.com/auth/login",
		Login:    CookieLogin("cookie_nyt_s", "NYT-S"),
		Article:  `section[name="articleBody"]`,
		PostClean: func(sel *goquery.Selection) {
			sel.Find("p").Each(func(_ int, s *goquery.Selection) {
				text := strings.TrimSpace(s.Text())
				for _, phrase := range paywallPhrases {
					if strings.Contains(text, phrase) {
						s.Remove()
						return
					}
				}
			})
			sel.Find("div").Each(func(_ int, s *goquery.Selection) {
				class, _ := s.Attr("class")
				class = strings.ToLower(class)
				for _, keyword := range paywallClassKeywords {
					if strings.Contains(class, keyword) {
						s.Remove()
						return
					}
				}
			})
			// Keep only href on links.
			sel.Find("a").Each(func(_ int, s *goquery.Selection) {
				href, ok := s.Attr("href")
				ClearAttrs(s)
				if ok {
					s.SetAttr("href", href)
				}
			})
		},
	})}
}

// Author reads the byline meta and drops its "By " prefix.
func (s *NYTimes) Author(ctx context.Context, rawurl string) (string, error) {
	byline, err := s.Meta(ctx, rawurl, []MetaRule{{Attr: "name", Values: []string{"byl"}}})
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(byline, "By "), nil
}
