// Package mock provides function-field mock implementations of the domain
// interfaces for tests.
package mock

import (
	"context"
	"net/url"

	"github.com/kiosque/kiosque"
)

var _ kiosque.Client = (*Client)(nil)

// Client is a mock implementation of kiosque.Client.
type Client struct {
	GetFn       func(ctx context.Context, rawurl string) (*kiosque.Response, error)
	PostFormFn  func(ctx context.Context, rawurl string, form url.Values, headers map[string]string) (*kiosque.Response, error)
	FetchFn     func(ctx context.Context, rawurl string) (*kiosque.Download, error)
	SetCookieFn func(rawurl, name, value string) error
}

func (c *Client) Get(ctx context.Context, rawurl string) (*kiosque.Response, error) {
	return c.GetFn(ctx, rawurl)
}

func (c *Client) PostForm(ctx context.Context, rawurl string, form url.Values, headers map[string]string) (*kiosque.Response, error) {
	return c.PostFormFn(ctx, rawurl, form, headers)
}

func (c *Client) Fetch(ctx context.Context, rawurl string) (*kiosque.Download, error) {
	return c.FetchFn(ctx, rawurl)
}

func (c *Client) SetCookie(rawurl, name, value string) error {
	if c.SetCookieFn == nil {
		return nil
	}
	return c.SetCookieFn(rawurl, name, value)
}
