// Package raindrop implements kiosque.BookmarkService against the
// Raindrop.io REST API.
package raindrop

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kiosque/kiosque"
)

// DefaultBaseURL is the production Raindrop.io API endpoint.
const DefaultBaseURL = "https://api.raindrop.io"

// perPage is the page size requested from the API.
const perPage = 50

// Ensure Client implements kiosque.BookmarkService at compile time.
var _ kiosque.BookmarkService = (*Client)(nil)

// Client is a thin typed wrapper over the Raindrop.io REST API,
// authenticated with a test token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint, for tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Client using the given API token.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    DefaultBaseURL,
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type raindrop struct {
	ID      int64     `json:"_id"`
	Title   string    `json:"title"`
	Link    string    `json:"link"`
	Excerpt string    `json:"excerpt"`
	Tags    []string  `json:"tags"`
	Created time.Time `json:"created"`
}

type raindropsPage struct {
	Items []raindrop `json:"items"`
	Count int        `json:"count"`
}

// List returns every raindrop in the unsorted collection, walking the
// paged endpoint until all items are collected.
func (c *Client) List(ctx context.Context) ([]kiosque.Bookmark, error) {
	var bookmarks []kiosque.Bookmark
	for page := 0; ; page++ {
		url := fmt.Sprintf("%s/rest/v1/raindrops/0?perpage=%d&page=%d", c.baseURL, perPage, page)

		var result raindropsPage
		if err := c.do(ctx, http.MethodGet, url, &result); err != nil {
			return nil, err
		}
		for _, item := range result.Items {
			bookmarks = append(bookmarks, kiosque.Bookmark{
				ID:      fmt.Sprintf("%d", item.ID),
				Title:   item.Title,
				URL:     item.Link,
				Excerpt: item.Excerpt,
				Tags:    item.Tags,
				Created: item.Created,
				Source:  "raindrop",
			})
		}
		if len(result.Items) == 0 || len(bookmarks) >= result.Count {
			return bookmarks, nil
		}
	}
}

// Archive removes a raindrop, moving it to the service's trash.
func (c *Client) Archive(ctx context.Context, id string) error {
	url := fmt.Sprintf("%s/rest/v1/raindrop/%s", c.baseURL, id)
	return c.do(ctx, http.MethodDelete, url, nil)
}

// do performs an authenticated request and decodes the JSON response into
// out when non-nil.
func (c *Client) do(ctx context.Context, method, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return kiosque.Errorf(kiosque.EINTERNAL, "build raindrop request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return kiosque.Errorf(kiosque.EUNAVAILABLE, "raindrop request failed: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return kiosque.Errorf(kiosque.EAUTH, "raindrop rejected the API token")
	case resp.StatusCode == http.StatusNotFound:
		return kiosque.Errorf(kiosque.ENOTFOUND, "raindrop %s not found", url)
	case resp.StatusCode >= 400:
		return kiosque.Errorf(kiosque.EUNAVAILABLE, "raindrop returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return kiosque.Errorf(kiosque.EUNAVAILABLE, "read raindrop response: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return kiosque.Errorf(kiosque.EINTERNAL, "decode raindrop response: %v", err)
	}
	return nil
}
