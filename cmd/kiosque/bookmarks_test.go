package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosque/kiosque"
	"github.com/kiosque/kiosque/mock"
)

func TestBookmarksCmd_List(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Bookmarks: map[string]kiosque.BookmarkService{
			"raindrop": &mock.BookmarkService{
				ListFn: func(context.Context) ([]kiosque.Bookmark, error) {
					return []kiosque.Bookmark{
						{ID: "1", Title: "One", URL: "https://example.com/1", Source: "raindrop"},
					}, nil
				},
			},
			"github": &mock.BookmarkService{
				ListFn: func(context.Context) ([]kiosque.Bookmark, error) {
					return []kiosque.Bookmark{
						{ID: "golang/go", URL: "https://github.com/golang/go", Source: "github"},
					}, nil
				},
			},
		},
	}

	cmd := &BookmarksCmd{}
	require.NoError(t, cmd.Run(deps))

	out := stdout.String()
	assert.Contains(t, out, "One")
	assert.Contains(t, out, "golang/go")
	// Services print in deterministic order.
	assert.Less(t, bytes.Index(stdout.Bytes(), []byte("github")), bytes.Index(stdout.Bytes(), []byte("raindrop")))
}

func TestBookmarksCmd_List_PartialFailure(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Bookmarks: map[string]kiosque.BookmarkService{
			"raindrop": &mock.BookmarkService{
				ListFn: func(context.Context) ([]kiosque.Bookmark, error) {
					return nil, kiosque.Errorf(kiosque.EAUTH, "raindrop rejected the API token")
				},
			},
			"github": &mock.BookmarkService{
				ListFn: func(context.Context) ([]kiosque.Bookmark, error) {
					return []kiosque.Bookmark{
						{ID: "golang/go", URL: "https://github.com/golang/go", Source: "github"},
					}, nil
				},
			},
		},
	}

	cmd := &BookmarksCmd{}
	err := cmd.Run(deps)
	require.Error(t, err)

	// The healthy service still printed its bookmarks.
	assert.Contains(t, stdout.String(), "golang/go")
	assert.Contains(t, stderr.String(), "raindrop rejected the API token")
}

func TestBookmarksCmd_Archive(t *testing.T) {
	t.Parallel()

	var archived string
	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Bookmarks: map[string]kiosque.BookmarkService{
			"raindrop": &mock.BookmarkService{
				ArchiveFn: func(_ context.Context, id string) error {
					archived = id
					return nil
				},
			},
		},
	}

	cmd := &BookmarksCmd{Service: "raindrop", Archive: "42"}
	require.NoError(t, cmd.Run(deps))
	assert.Equal(t, "42", archived)
	assert.Contains(t, stdout.String(), "Archived 42")
}

func TestBookmarksCmd_Archive_RequiresService(t *testing.T) {
	t.Parallel()

	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
		Bookmarks: map[string]kiosque.BookmarkService{
			"raindrop": &mock.BookmarkService{},
		},
	}

	cmd := &BookmarksCmd{Archive: "42"}
	err := cmd.Run(deps)
	require.Error(t, err)
	assert.Equal(t, kiosque.EINVALID, kiosque.ErrorCode(err))
}

func TestBookmarksCmd_NoServices(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	deps := &Dependencies{
		Ctx:       context.Background(),
		Stdout:    &stdout,
		Stderr:    &bytes.Buffer{},
		Bookmarks: map[string]kiosque.BookmarkService{},
	}

	cmd := &BookmarksCmd{}
	require.NoError(t, cmd.Run(deps))
	assert.Contains(t, stdout.String(), "No bookmark services configured")
}
