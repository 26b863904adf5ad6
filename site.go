package kiosque

import "context"

// Site is a handler for one publication. It knows how to authenticate
// against the site and how to extract article metadata and content from its
// pages. Metadata accessors return an empty string when the page does not
// expose the field; only Article can fail on missing content.
type Site interface {
	// Name identifies the handler in logs and error messages.
	Name() string

	// BaseURL is the canonical URL prefix identifying the site.
	// Unique across all registered handlers.
	BaseURL() string

	// Aliases are short names usable in place of a URL.
	Aliases() []string

	// Login performs the site's authentication handshake. It is a no-op
	// when the site needs no authentication, no credentials are configured,
	// or a previous call already succeeded in this process.
	Login(ctx context.Context) error

	// Title returns the article title, or "" when unresolved.
	Title(ctx context.Context, url string) (string, error)

	// Author returns the article author, or "" when unresolved.
	Author(ctx context.Context, url string) (string, error)

	// Date returns the publication date normalized to YYYY-MM-DD.
	// Unparseable values degrade to their first ten characters.
	Date(ctx context.Context, url string) (string, error)

	// Description returns the article description, or "" when unresolved.
	Description(ctx context.Context, url string) (string, error)

	// URL returns the canonical form of the given URL, following any
	// rewrite recorded during resolution.
	URL(url string) string

	// Article returns the extracted and cleaned article body as HTML.
	// Returns EEXTRACTION when the body locator matches nothing.
	Article(ctx context.Context, url string) (string, error)

	// LatestIssueURL returns the download URL of the site's latest PDF
	// issue. Returns ENOTIMPLEMENTED for sites without the feature.
	LatestIssueURL(ctx context.Context) (string, error)
}

// FieldAdder is an optional Site extension for handlers that contribute
// extra header fields (e.g. an original_url field) beyond the standard set.
type FieldAdder interface {
	ExtraFields(ctx context.Context, url string) ([]Field, error)
}

// Resolver turns a URL or alias into a site handler.
type Resolver interface {
	// Resolve returns the handler whose base URL prefixes the input or
	// whose alias equals it, probing the live URL for a canonical-URL meta
	// tag as a last resort. Returns EUNSUPPORTED when nothing matches.
	Resolve(ctx context.Context, urlOrAlias string) (Site, error)
}

// CredentialsProvider supplies site credentials from configuration.
type CredentialsProvider interface {
	// Credentials returns the key/value section for a site's base URL.
	// The boolean reports whether the section exists at all, so callers
	// can distinguish "not configured" from "configured but empty".
	Credentials(baseURL string) (map[string]string, bool)
}
