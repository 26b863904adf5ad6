package site

import (
	"bytes"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/kiosque/kiosque"
)

// absoluteURL resolves href against base, returning href unchanged when it
// is already absolute or base does not parse.
func absoluteURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}

// parseHTML parses a fetched body into a goquery document.
func parseHTML(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, kiosque.Errorf(kiosque.EINTERNAL, "parse HTML: %v", err)
	}
	return doc, nil
}

// hiddenInput scrapes the value of <input name=...> from an HTML page,
// typically a CSRF token or form build id on a login form.
func hiddenInput(body []byte, name string) (string, error) {
	doc, err := parseHTML(body)
	if err != nil {
		return "", err
	}
	value, ok := doc.Find(fmt.Sprintf("input[name=%q]", name)).First().Attr("value")
	if !ok {
		return "", kiosque.Errorf(kiosque.EAUTH, "no %q input on login page (login flow changed?)", name)
	}
	return value, nil
}
