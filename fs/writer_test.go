package fs_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosque/kiosque"
	"github.com/kiosque/kiosque/fs"
)

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	doc := &kiosque.Document{
		URL: "https://example.com/a/b/my-article.html",
		Fields: []kiosque.Field{
			{Key: "title", Value: "A Title"},
			{Key: "author", Value: ""},
			{Key: "date", Value: "2024-05-01"},
			{Key: "url", Value: "https://example.com/a/b/my-article.html"},
			{Key: "description", Value: "A description."},
		},
		Body: "# A Title\n\nBody text.\n",
	}

	got := fs.FormatDocument(doc)
	want := `---
title: A Title
author:
date: 2024-05-01
url: https://example.com/a/b/my-article.html
description: A description.
---

# A Title

Body text.
`
	assert.Equal(t, want, got)
}

func TestDocumentFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		date string
		want string
	}{
		{
			name: "html extension stripped",
			url:  "https://example.com/articles/my-story.html",
			date: "2024-05-01",
			want: "2024-05-01-my-story.md",
		},
		{
			name: "trailing slash",
			url:  "https://example.com/articles/my-story/",
			date: "2024-05-01",
			want: "2024-05-01-my-story.md",
		},
		{
			name: "no path",
			url:  "https://example.com/",
			date: "2024-05-01",
			want: "2024-05-01-article.md",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := &kiosque.Document{
				URL:    tt.url,
				Fields: []kiosque.Field{{Key: "date", Value: tt.date}},
			}
			assert.Equal(t, tt.want, fs.DocumentFilename(doc))
		})
	}
}

func TestWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := fs.NewWriter(dir)

	doc := &kiosque.Document{
		URL: "https://example.com/articles/story.html",
		Fields: []kiosque.Field{
			{Key: "title", Value: "Story"},
			{Key: "date", Value: "2024-05-01"},
		},
		Body: "Body.\n",
	}

	path, err := w.WriteDocument(doc, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2024-05-01-story.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FormatDocument(doc), string(data))
}

func TestWriter_WriteIssue(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := fs.NewWriter(dir)

	dl := &kiosque.Download{
		Body:     io.NopCloser(strings.NewReader("%PDF-1.4 fake")),
		Filename: "issue-2024-05.bin",
	}

	path, err := w.WriteIssue(dl)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "issue-2024-05.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
}

func TestWriter_WriteIssue_NoFilename(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := fs.NewWriter(dir)

	dl := &kiosque.Download{Body: io.NopCloser(strings.NewReader("x"))}

	path, err := w.WriteIssue(dl)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "issue.pdf"), path)
}
