// Package http provides the shared HTTP client used by site handlers.
// It retries transient failures with exponential backoff, sends a fixed
// browser-like header set to reduce bot blocking, keeps cookies across
// requests, and can route all traffic through an HTTP(S) or SOCKS5 proxy.
package http

import (
	"context"
	"io"
	"mime"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/kiosque/kiosque"
	"golang.org/x/net/proxy"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the connect/read timeout applied to every request.
const DefaultTimeout = 30 * time.Second

// defaultUserAgent mimics a desktop Firefox. Several supported sites
// reject requests with obvious non-browser agents.
const defaultUserAgent = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"

// DefaultRetryDelays returns the backoff delays between attempts: 1s, 2s.
// One initial attempt plus one retry per delay gives 3 attempts total.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// Ensure Client implements kiosque.Client at compile time.
var _ kiosque.Client = (*Client)(nil)

// Client is a retrying HTTP client with a shared cookie jar.
type Client struct {
	hc       *http.Client
	delays   []time.Duration
	limiter  *rate.Limiter
	proxyURL string
	timeout  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetryDelays sets the backoff delays between retry attempts.
// Useful in tests to avoid real waits.
func WithRetryDelays(delays []time.Duration) Option {
	return func(c *Client) { c.delays = delays }
}

// WithProxy routes all requests through the given proxy URL.
// Supported schemes: http, https, socks5, socks5h.
func WithProxy(rawurl string) Option {
	return func(c *Client) { c.proxyURL = rawurl }
}

// WithRateLimit caps outbound requests at n per second.
func WithRateLimit(n float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(n), 1) }
}

// NewClient creates a Client. A misconfigured proxy is reported here, not
// on first use.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		delays:  DefaultRetryDelays(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	transport, err := newTransport(c.proxyURL)
	if err != nil {
		return nil, err
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	c.hc = &http.Client{
		Transport: transport,
		Jar:       jar,
		Timeout:   c.timeout,
	}
	return c, nil
}

func newTransport(proxyURL string) (*http.Transport, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
	}
	if proxyURL == "" {
		return transport, nil
	}

	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, kiosque.Errorf(kiosque.EINVALID, "invalid proxy URL %q: %v", proxyURL, err)
	}

	switch u.Scheme {
	case "http", "https":
		transport.Proxy = http.ProxyURL(u)
	case "socks5", "socks5h":
		var auth *proxy.Auth
		if u.User != nil {
			password, _ := u.User.Password()
			auth = &proxy.Auth{User: u.User.Username(), Password: password}
		}
		dialer, err := proxy.SOCKS5("tcp", u.Host, auth, proxy.Direct)
		if err != nil {
			return nil, kiosque.Errorf(kiosque.EINVALID, "invalid SOCKS5 proxy %q: %v", proxyURL, err)
		}
		transport.Proxy = nil
		transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(proxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		}
	default:
		return nil, kiosque.Errorf(kiosque.EINVALID, "unsupported proxy scheme %q", u.Scheme)
	}
	return transport, nil
}

// Get fetches a URL following redirects, retrying transient failures.
func (c *Client) Get(ctx context.Context, rawurl string) (*kiosque.Response, error) {
	return c.do(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	})
}

// PostForm submits a URL-encoded form, retrying transient failures.
func (c *Client) PostForm(ctx context.Context, rawurl string, form url.Values, headers map[string]string) (*kiosque.Response, error) {
	encoded := form.Encode()
	return c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawurl, strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req, nil
	})
}

// Fetch streams a URL's body. The caller must close Download.Body.
func (c *Client) Fetch(ctx context.Context, rawurl string) (*kiosque.Download, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, kiosque.Errorf(kiosque.EINVALID, "invalid URL %q: %v", rawurl, err)
	}
	c.setDefaultHeaders(req)

	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, kiosque.Errorf(kiosque.EUNAVAILABLE, "fetch %s: %v", rawurl, err)
	}
	if err := statusError(resp.StatusCode, resp.Request.URL.String()); err != nil {
		resp.Body.Close()
		return nil, err
	}

	return &kiosque.Download{
		Body:     resp.Body,
		Filename: downloadFilename(resp),
	}, nil
}

// SetCookie injects a cookie into the jar for the URL's domain.
func (c *Client) SetCookie(rawurl, name, value string) error {
	u, err := url.Parse(rawurl)
	if err != nil {
		return kiosque.Errorf(kiosque.EINVALID, "invalid cookie URL %q: %v", rawurl, err)
	}
	c.hc.Jar.SetCookies(u, []*http.Cookie{{Name: name, Value: value}})
	return nil
}

func (c *Client) do(ctx context.Context, build func() (*http.Request, error)) (*kiosque.Response, error) {
	maxAttempts := len(c.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.delays[attempt-1]):
			}
		}

		resp, err := c.attempt(ctx, build)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// 4xx is definitive; only transient failures are retried.
		if kiosque.ErrorCode(err) != kiosque.EUNAVAILABLE {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, build func() (*http.Request, error)) (*kiosque.Response, error) {
	req, err := build()
	if err != nil {
		return nil, kiosque.Errorf(kiosque.EINVALID, "invalid request: %v", err)
	}
	c.setDefaultHeaders(req)

	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, kiosque.Errorf(kiosque.EUNAVAILABLE, "%s %s: %v", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	finalURL := req.URL.String()
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	if err := statusError(resp.StatusCode, finalURL); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, kiosque.Errorf(kiosque.EUNAVAILABLE, "read %s: %v", finalURL, err)
	}

	return &kiosque.Response{
		StatusCode:         resp.StatusCode,
		Body:               body,
		FinalURL:           finalURL,
		ContentDisposition: resp.Header.Get("Content-Disposition"),
	}, nil
}

func (c *Client) setDefaultHeaders(req *http.Request) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", defaultUserAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	}
	if req.Header.Get("Accept-Language") == "" {
		req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	}
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

func statusError(code int, url string) error {
	switch {
	case code >= 500:
		return kiosque.Errorf(kiosque.EUNAVAILABLE, "HTTP %d for %s", code, url)
	case code == http.StatusNotFound:
		return kiosque.Errorf(kiosque.ENOTFOUND, "HTTP 404 for %s", url)
	case code >= 400:
		return kiosque.Errorf(kiosque.EINVALID, "HTTP %d for %s", code, url)
	}
	return nil
}

// downloadFilename derives a filename from the Content-Disposition header,
// falling back to the final URL's last path segment.
func downloadFilename(resp *http.Response) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}
	return path.Base(resp.Request.URL.Path)
}
