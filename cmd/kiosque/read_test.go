package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosque/kiosque"
	"github.com/kiosque/kiosque/mock"
)

func testDoc() *kiosque.Document {
	return &kiosque.Document{
		URL: "https://example.com/articles/story.html",
		Fields: []kiosque.Field{
			{Key: "title", Value: "Story"},
			{Key: "author", Value: "A. Author"},
			{Key: "date", Value: "2024-05-01"},
			{Key: "url", Value: "https://example.com/articles/story.html"},
			{Key: "description", Value: "A story."},
		},
		Body: "Body.\n",
	}
}

func TestReadCmd_Stdout(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Documents: &mock.DocumentService{
			RenderDocumentFn: func(_ context.Context, urlOrAlias string) (*kiosque.Document, error) {
				assert.Equal(t, "https://example.com/articles/story.html", urlOrAlias)
				return testDoc(), nil
			},
		},
	}

	cmd := &ReadCmd{URL: "https://example.com/articles/story.html", Stdout: true}
	require.NoError(t, cmd.Run(deps))
	assert.Contains(t, stdout.String(), "title: Story")
	assert.Contains(t, stdout.String(), "Body.")
}

func TestReadCmd_WritesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Documents: &mock.DocumentService{
			RenderDocumentFn: func(context.Context, string) (*kiosque.Document, error) {
				return testDoc(), nil
			},
		},
	}

	cmd := &ReadCmd{URL: "https://example.com/articles/story.html", Dir: dir}
	require.NoError(t, cmd.Run(deps))

	path := filepath.Join(dir, "2024-05-01-story.md")
	assert.Contains(t, stdout.String(), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Story")
}

func TestReadCmd_RenderError(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Documents: &mock.DocumentService{
			RenderDocumentFn: func(_ context.Context, urlOrAlias string) (*kiosque.Document, error) {
				return nil, kiosque.Errorf(kiosque.EUNSUPPORTED, "unsupported URL or alias: %q", urlOrAlias)
			},
		},
	}

	cmd := &ReadCmd{URL: "https://unknown.example/a"}
	err := cmd.Run(deps)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "unsupported URL or alias")
}
