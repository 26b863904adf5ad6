package kiosque

import (
	"context"
	"io"
	"net/url"
)

// Response is the outcome of a successful HTTP request.
type Response struct {
	// StatusCode is the final HTTP status code.
	StatusCode int

	// Body is the full response body.
	Body []byte

	// FinalURL is the URL after following redirects. Authentication flows
	// inspect it to decide whether a login round-trip succeeded.
	FinalURL string

	// ContentDisposition is the raw Content-Disposition header, if any.
	ContentDisposition string
}

// Download is a streamed response used for large payloads such as PDF
// issues. The caller owns Body and must close it.
type Download struct {
	// Body streams the response payload.
	Body io.ReadCloser

	// Filename is derived from the Content-Disposition header when
	// present, otherwise from the final URL's last path segment.
	Filename string
}

// Client performs HTTP requests on behalf of site handlers. Implementations
// retry transient failures with backoff, send browser-like headers, share a
// cookie jar across calls, and optionally route through an outbound proxy.
type Client interface {
	// Get fetches a URL following redirects. Transient failures (transport
	// errors, 5xx) are retried; 404 returns ENOTFOUND; other 4xx return
	// EINVALID without retry.
	Get(ctx context.Context, rawurl string) (*Response, error)

	// PostForm submits a URL-encoded form. Extra headers override the
	// client's defaults for this request only.
	PostForm(ctx context.Context, rawurl string, form url.Values, headers map[string]string) (*Response, error)

	// Fetch streams a URL's body instead of buffering it.
	Fetch(ctx context.Context, rawurl string) (*Download, error)

	// SetCookie injects a cookie into the client's jar for the given URL's
	// domain, for sites authenticated with a pre-obtained session cookie.
	SetCookie(rawurl, name, value string) error
}
