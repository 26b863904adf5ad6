package site

import (
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/kiosque/kiosque"
)

// Session holds the per-process state shared by all handlers: the HTTP
// client (and its cookie jar), the configured credentials, which handlers
// have authenticated, and the canonical-URL rewrite cache. Both mutable
// maps are monotonic: a connected flag never reverts and a rewrite is
// never replaced.
type Session struct {
	client kiosque.Client
	creds  kiosque.CredentialsProvider

	mu        sync.Mutex
	connected map[string]bool
	rewrites  map[string]string
}

// NewSession creates a Session. creds may be nil for anonymous use.
func NewSession(client kiosque.Client, creds kiosque.CredentialsProvider) *Session {
	return &Session{
		client:    client,
		creds:     creds,
		connected: make(map[string]bool),
		rewrites:  make(map[string]string),
	}
}

// Client returns the shared HTTP client.
func (s *Session) Client() kiosque.Client { return s.client }

// Credentials returns a site's configured credential section.
func (s *Session) Credentials(baseURL string) (map[string]string, bool) {
	if s.creds == nil {
		return nil, false
	}
	return s.creds.Credentials(baseURL)
}

// Connected reports whether the named handler has authenticated in this
// process.
func (s *Session) Connected(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected[name]
}

// SetConnected marks the named handler as authenticated for the rest of
// the process.
func (s *Session) SetConnected(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected[name] = true
}

// Rewrite returns the canonical URL recorded for rawurl, or rawurl itself.
// Chained rewrites (a short link whose canonical URL itself has a recorded
// canonical) are followed to their end, bounded like probe recursion.
func (s *Session) Rewrite(rawurl string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for range maxProbeDepth {
		to, ok := s.rewrites[rawurl]
		if !ok {
			return rawurl
		}
		rawurl = to
	}
	return rawurl
}

// SetRewrite records a canonical URL discovered for rawurl. Once set, the
// mapping holds for the rest of the process.
func (s *Session) SetRewrite(rawurl, canonical string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rewrites[rawurl]; !ok {
		s.rewrites[rawurl] = canonical
	}
}

// Factory constructs a handler bound to a session.
type Factory func(*Session) kiosque.Site

// maxProbeDepth bounds canonical-URL probe recursion. A canonical URL
// equal to its input is the base case.
const maxProbeDepth = 5

// Ensure Registry implements kiosque.Resolver at compile time.
var _ kiosque.Resolver = (*Registry)(nil)

// Registry is the static registration table mapping base URLs and aliases
// to handler instances, and the resolver turning input strings into
// handlers. Registration happens eagerly at construction; handlers are
// singletons living for the process.
type Registry struct {
	session *Session

	mu      sync.RWMutex
	sites   []kiosque.Site
	aliases map[string]kiosque.Site
}

// NewRegistry creates an empty Registry with its own session.
func NewRegistry(client kiosque.Client, creds kiosque.CredentialsProvider) *Registry {
	return &Registry{
		session: NewSession(client, creds),
		aliases: make(map[string]kiosque.Site),
	}
}

// Session returns the registry's session.
func (r *Registry) Session() *Session { return r.session }

// Register instantiates a handler and adds it to the table.
func (r *Registry) Register(f Factory) {
	site := f(r.session)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sites = append(r.sites, site)
	for _, alias := range site.Aliases() {
		r.aliases[alias] = site
	}
}

// AddAlias maps an extra alias (e.g. from configuration) to the handler
// registered for baseURL.
func (r *Registry) AddAlias(alias, baseURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	trimmed := strings.TrimSuffix(NormalizeURL(baseURL), "/")
	for _, site := range r.sites {
		if strings.TrimSuffix(site.BaseURL(), "/") == trimmed {
			r.aliases[alias] = site
			return nil
		}
	}
	return kiosque.Errorf(kiosque.ENOTFOUND, "no handler registered for %q", baseURL)
}

// Sites returns all registered handlers in registration order.
func (r *Registry) Sites() []kiosque.Site {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]kiosque.Site(nil), r.sites...)
}

// Resolve maps a URL or alias to its handler. The scheme is normalized to
// https, aliases match exactly, base URLs match as prefixes with the
// longest prefix winning, and unknown URLs are probed live for an og:url
// canonical tag whose result is cached for the process.
func (r *Registry) Resolve(ctx context.Context, urlOrAlias string) (kiosque.Site, error) {
	return r.resolve(ctx, strings.TrimSpace(urlOrAlias), maxProbeDepth)
}

func (r *Registry) resolve(ctx context.Context, input string, depth int) (kiosque.Site, error) {
	normalized := r.session.Rewrite(NormalizeURL(input))

	if site := r.lookup(normalized); site != nil {
		return site, nil
	}

	// Live probe: trust the page's self-declared canonical URL.
	if strings.HasPrefix(normalized, "https://") && depth > 0 {
		canonical, err := r.probeCanonical(ctx, normalized)
		if err == nil && canonical != "" && canonical != normalized {
			r.session.SetRewrite(normalized, canonical)
			if input != normalized {
				r.session.SetRewrite(input, canonical)
			}
			return r.resolve(ctx, canonical, depth-1)
		}
	}

	return nil, kiosque.Errorf(kiosque.EUNSUPPORTED,
		"unsupported URL or alias: %q (this website is not currently supported)", input)
}

func (r *Registry) lookup(input string) kiosque.Site {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if site, ok := r.aliases[input]; ok {
		return site
	}

	// Longest prefix wins so a more specific base URL cannot be shadowed
	// by registration order.
	var best kiosque.Site
	bestLen := -1
	for _, site := range r.sites {
		base := site.BaseURL()
		if strings.HasPrefix(input, base) && len(base) > bestLen {
			best, bestLen = site, len(base)
		}
	}
	return best
}

func (r *Registry) probeCanonical(ctx context.Context, rawurl string) (string, error) {
	resp, err := r.session.Client().Get(ctx, rawurl)
	if err != nil {
		return "", err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return "", err
	}
	canonical, _ := doc.Find(`meta[property="og:url"]`).First().Attr("content")
	return canonical, nil
}
