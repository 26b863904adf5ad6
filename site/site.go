// Package site implements the per-publication handler engine, the handler
// registry/resolver, and the catalog of supported publications.
//
// A handler is a declarative Config driving the default extraction engine
// (Base), optionally specialized by embedding Base in a handler type and
// overriding individual accessors, mirroring the per-variant selector types
// in the rest of the codebase.
package site

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/kiosque/kiosque"
	"golang.org/x/net/html"
)

// MetaRule matches <meta> tags whose Attr attribute equals any of Values,
// in order. The first matching tag's content attribute wins.
type MetaRule struct {
	Attr   string
	Values []string
}

// LoginFunc executes a site's authentication handshake. Strategies are
// constructed by FormLogin, CookieLogin and PKCELogin; a nil LoginFunc
// means the site needs no authentication.
type LoginFunc func(ctx context.Context, b *Base) error

// Config declares one publication's extraction and authentication rules.
type Config struct {
	// Name identifies the handler in logs and errors.
	Name string

	// BaseURL is the canonical URL prefix, unique across the registry.
	BaseURL string

	// Aliases are short names usable in place of a URL.
	Aliases []string

	// LoginURL is the login endpoint; empty means anonymous access.
	LoginURL string

	// Meta selectors per header field; defaults cover the OpenGraph set.
	TitleMeta       []MetaRule
	AuthorMeta      []MetaRule
	DateMeta        []MetaRule
	DescriptionMeta []MetaRule

	// Article is the selector locating the DOM node with the article body.
	Article string

	// StripAttrs lists selectors whose matches lose all attributes.
	// Applied before Remove so removal rules can still match by tag.
	StripAttrs []string

	// Remove lists selectors whose matches are removed entirely.
	Remove []string

	// Login is the authentication strategy, nil for anonymous sites.
	Login LoginFunc

	// PostClean runs after the standard cleanup rules, for sites whose
	// markup needs procedural fixups (renamed tags, paywall scrubbing).
	PostClean func(sel *goquery.Selection)
}

func defaultMeta(rules []MetaRule, fallback ...MetaRule) []MetaRule {
	if rules != nil {
		return rules
	}
	return fallback
}

// Ensure Base implements kiosque.Site at compile time.
var _ kiosque.Site = (*Base)(nil)

// Base is the default declarative handler. Handler types embed *Base and
// override the accessors their site's markup does not fit.
type Base struct {
	cfg      Config
	session  *Session
	creds    map[string]string
	hasCreds bool

	mu    sync.Mutex
	pages map[string]*goquery.Document
}

// NewBase creates a handler driven by cfg, bound to the session's HTTP
// client and credentials. Credentials are read once at construction.
func NewBase(session *Session, cfg Config) *Base {
	cfg.TitleMeta = defaultMeta(cfg.TitleMeta,
		MetaRule{Attr: "property", Values: []string{"og:title", "title"}})
	cfg.AuthorMeta = defaultMeta(cfg.AuthorMeta,
		MetaRule{Attr: "property", Values: []string{"og:article:author", "article:author"}})
	cfg.DateMeta = defaultMeta(cfg.DateMeta,
		MetaRule{Attr: "property", Values: []string{
			"og:article:published_time", "article:published_time",
			"og:article:updated_time", "og:updated_time", "date",
		}})
	cfg.DescriptionMeta = defaultMeta(cfg.DescriptionMeta,
		MetaRule{Attr: "property", Values: []string{"og:description", "description"}})

	creds, ok := session.Credentials(cfg.BaseURL)
	return &Base{
		cfg:      cfg,
		session:  session,
		creds:    creds,
		hasCreds: ok,
		pages:    make(map[string]*goquery.Document),
	}
}

// Name returns the handler's identifier.
func (b *Base) Name() string { return b.cfg.Name }

// BaseURL returns the canonical URL prefix.
func (b *Base) BaseURL() string { return b.cfg.BaseURL }

// Aliases returns the handler's short names.
func (b *Base) Aliases() []string { return b.cfg.Aliases }

// LoginURL returns the configured login endpoint.
func (b *Base) LoginURL() string { return b.cfg.LoginURL }

// Client returns the session's HTTP client, for strategy functions and
// handler overrides.
func (b *Base) Client() kiosque.Client { return b.session.Client() }

// Credentials returns the handler's configured credentials, nil when the
// site has no configuration section.
func (b *Base) Credentials() map[string]string { return b.creds }

// Login runs the configured authentication strategy once per process.
// It is a no-op for anonymous sites, for sites without configured
// credentials, and after a previous success.
func (b *Base) Login(ctx context.Context) error {
	if b.session.Connected(b.cfg.Name) {
		return nil
	}
	if b.cfg.Login == nil || !b.hasCreds {
		return nil
	}
	if err := b.cfg.Login(ctx, b); err != nil {
		if kiosque.ErrorCode(err) == kiosque.EAUTH {
			return err
		}
		return kiosque.Errorf(kiosque.EAUTH, "login to %s failed: %v", b.cfg.Name, err)
	}
	b.session.SetConnected(b.cfg.Name)
	return nil
}

// Page returns the parsed DOM for a URL, logging in first when needed and
// following any canonical rewrite. Parses are cached per URL.
func (b *Base) Page(ctx context.Context, rawurl string) (*goquery.Document, error) {
	if err := b.Login(ctx); err != nil {
		return nil, err
	}
	rawurl = b.session.Rewrite(rawurl)

	b.mu.Lock()
	doc, ok := b.pages[rawurl]
	b.mu.Unlock()
	if ok {
		return doc, nil
	}

	resp, err := b.Client().Get(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	doc, err = goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, kiosque.Errorf(kiosque.EINTERNAL, "parse %s: %v", rawurl, err)
	}

	b.mu.Lock()
	b.pages[rawurl] = doc
	b.mu.Unlock()
	return doc, nil
}

// Meta returns the content of the first <meta> tag matching the rules,
// or "" when no rule matches.
func (b *Base) Meta(ctx context.Context, rawurl string, rules []MetaRule) (string, error) {
	doc, err := b.Page(ctx, rawurl)
	if err != nil {
		return "", err
	}
	for _, rule := range rules {
		for _, value := range rule.Values {
			selector := fmt.Sprintf("meta[%s=%q]", rule.Attr, value)
			if content, ok := doc.Find(selector).First().Attr("content"); ok {
				return content, nil
			}
		}
	}
	return "", nil
}

// Title returns the article title, or "" when unresolved.
func (b *Base) Title(ctx context.Context, url string) (string, error) {
	return b.Meta(ctx, url, b.cfg.TitleMeta)
}

// Author returns the article author, or "" when unresolved.
func (b *Base) Author(ctx context.Context, url string) (string, error) {
	return b.Meta(ctx, url, b.cfg.AuthorMeta)
}

// Date returns the publication date normalized to YYYY-MM-DD.
func (b *Base) Date(ctx context.Context, url string) (string, error) {
	raw, err := b.Meta(ctx, url, b.cfg.DateMeta)
	if err != nil {
		return "", err
	}
	return NormalizeDate(raw), nil
}

// Description returns the first line of the article description.
func (b *Base) Description(ctx context.Context, url string) (string, error) {
	raw, err := b.Meta(ctx, url, b.cfg.DescriptionMeta)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(strings.TrimSpace(raw), "\n")
	return line, nil
}

// URL returns the canonical form of rawurl, following any rewrite recorded
// during resolution.
func (b *Base) URL(rawurl string) string {
	return b.session.Rewrite(NormalizeURL(rawurl))
}

// Locate returns the raw article body node per the configured locator.
// Returns EEXTRACTION when the locator matches nothing.
func (b *Base) Locate(ctx context.Context, rawurl string) (*goquery.Selection, error) {
	doc, err := b.Page(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	sel := doc.Find(b.cfg.Article).First()
	if sel.Length() == 0 {
		return nil, kiosque.Errorf(kiosque.EEXTRACTION,
			"failed to extract article content from %s (%s handler): selector %q matched nothing",
			rawurl, b.cfg.Name, b.cfg.Article)
	}
	return sel, nil
}

// Article returns the extracted and cleaned article body as HTML.
func (b *Base) Article(ctx context.Context, rawurl string) (string, error) {
	sel, err := b.Locate(ctx, rawurl)
	if err != nil {
		return "", err
	}
	cleaned, err := b.Clean(sel)
	if err != nil {
		return "", err
	}
	return goquery.OuterHtml(cleaned)
}

// CleanHTML cleans a located body node and serializes it, the common tail
// of handler Article overrides.
func (b *Base) CleanHTML(sel *goquery.Selection) (string, error) {
	cleaned, err := b.Clean(sel)
	if err != nil {
		return "", err
	}
	return goquery.OuterHtml(cleaned)
}

// Clean copies the node, clears its attributes, renames it to <article>,
// then applies the attribute-strip rules followed by the removal rules.
// Cleaning is idempotent: rules only strip and remove, never add.
func (b *Base) Clean(sel *goquery.Selection) (*goquery.Selection, error) {
	inner, err := sel.Html()
	if err != nil {
		return nil, kiosque.Errorf(kiosque.EINTERNAL, "serialize article node: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<article>" + inner + "</article>"))
	if err != nil {
		return nil, kiosque.Errorf(kiosque.EINTERNAL, "reparse article node: %v", err)
	}
	article := doc.Find("article").First()

	// Strip before remove: a later removal rule may match by tag name a
	// node whose attributes were just cleared.
	for _, selector := range b.cfg.StripAttrs {
		article.Find(selector).Each(func(_ int, s *goquery.Selection) {
			ClearAttrs(s)
		})
	}
	for _, selector := range b.cfg.Remove {
		article.Find(selector).Remove()
	}

	if b.cfg.PostClean != nil {
		b.cfg.PostClean(article)
	}
	return article, nil
}

// LatestIssueURL reports that the site has no PDF-issue feature.
// Handlers with the feature override it.
func (b *Base) LatestIssueURL(ctx context.Context) (string, error) {
	return "", kiosque.Errorf(kiosque.ENOTIMPLEMENTED,
		"%s does not support downloading PDF issues", b.cfg.Name)
}

// ClearAttrs removes every attribute from the nodes in sel.
func ClearAttrs(sel *goquery.Selection) {
	for _, n := range sel.Nodes {
		n.Attr = nil
	}
}

// Rename changes the tag name of the nodes in sel and clears their
// attributes.
func Rename(sel *goquery.Selection, tag string) {
	for _, n := range sel.Nodes {
		if n.Type == html.ElementNode {
			n.Data = tag
			n.Attr = nil
		}
	}
}

// NormalizeDate reduces an ISO-8601-like value to YYYY-MM-DD. Unparseable
// values degrade to their first ten characters; shorter values are
// returned unchanged.
func NormalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	if r := []rune(raw); len(r) >= 10 {
		return string(r[:10])
	}
	return raw
}

// NormalizeURL rewrites an http:// scheme to https://.
func NormalizeURL(rawurl string) string {
	if after, ok := strings.CutPrefix(rawurl, "http://"); ok {
		return "https://" + after
	}
	return rawurl
}

// Slug returns the last path segment of a URL without its extension,
// used to derive document filenames.
func Slug(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return path.Base(rawurl)
	}
	base := path.Base(strings.TrimSuffix(u.Path, "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}
