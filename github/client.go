// Package github implements kiosque.BookmarkService over the authenticated
// user's starred repositories.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kiosque/kiosque"
)

// DefaultBaseURL is the production GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// perPage is the page size requested from the API.
const perPage = 100

// Ensure Client implements kiosque.BookmarkService at compile time.
var _ kiosque.BookmarkService = (*Client)(nil)

// Client treats the user's starred repositories as bookmarks: listing
// returns the stars, archiving unstars. Bookmark IDs are "owner/repo".
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

// NewClient creates a Client using the given personal access token.
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

type starredRepo struct {
	StarredAt time.Time `json:"starred_at"`
	Repo      struct {
		FullName    string   `json:"full_name"`
		HTMLURL     string   `json:"html_url"`
		Description string   `json:"description"`
		Topics      []string `json:"topics"`
	} `json:"repo"`
}

// List returns the authenticated user's starred repositories, walking the
// paged endpoint until a short page signals the end.
func (c *Client) List(ctx context.Context) ([]kiosque.Bookmark, error) {
	var bookmarks []kiosque.Bookmark
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/user/starred?per_page=%d&page=%d", c.baseURL, perPage, page)

		var repos []starredRepo
		if err := c.do(ctx, http.MethodGet, url, &repos); err != nil {
			return nil, err
		}
		for _, star := range repos {
			bookmarks = append(bookmarks, kiosque.Bookmark{
				ID:      star.Repo.FullName,
				Title:   star.Repo.FullName,
				URL:     star.Repo.HTMLURL,
				Excerpt: star.Repo.Description,
				Tags:    star.Repo.Topics,
				Created: star.StarredAt,
				Source:  "github",
			})
		}
		if len(repos) < perPage {
			return bookmarks, nil
		}
	}
}

// Archive unstars a repository. The id must be "owner/repo".
func (c *Client) Archive(ctx context.Context, id string) error {
	if !strings.Contains(id, "/") {
		return kiosque.Errorf(kiosque.EINVALID, "github bookmark id must be owner/repo, got %q", id)
	}
	return c.do(ctx, http.MethodDelete, c.baseURL+"/user/starred/"+id, nil)
}

func (c *Client) do(ctx context.Context, method, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return kiosque.Errorf(kiosque.EINTERNAL, "build github request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	// The star-with-timestamp media type adds starred_at to list items.
	req.Header.Set("Accept", "application/vnd.github.star+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return kiosque.Errorf(kiosque.EUNAVAILABLE, "github request failed: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return kiosque.Errorf(kiosque.EAUTH, "github rejected the API token")
	case resp.StatusCode == http.StatusNotFound:
		return kiosque.Errorf(kiosque.ENOTFOUND, "github %s not found", url)
	case resp.StatusCode >= 400:
		return kiosque.Errorf(kiosque.EUNAVAILABLE, "github returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return kiosque.Errorf(kiosque.EUNAVAILABLE, "read github response: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return kiosque.Errorf(kiosque.EINTERNAL, "decode github response: %v", err)
	}
	return nil
}
