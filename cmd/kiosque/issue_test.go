package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosque/kiosque"
	"github.com/kiosque/kiosque/mock"
)

func TestIssueCmd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	loggedIn := false
	handler := &mock.Site{
		NameFn:  func() string { return "courrierinternational" },
		LoginFn: func(context.Context) error { loggedIn = true; return nil },
		LatestIssueURLFn: func(context.Context) (string, error) {
			return "https://www.courrierinternational.com/issue/latest.pdf", nil
		},
	}

	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Resolver: &mock.Resolver{
			ResolveFn: func(_ context.Context, urlOrAlias string) (kiosque.Site, error) {
				assert.Equal(t, "courrier", urlOrAlias)
				return handler, nil
			},
		},
		Client: &mock.Client{
			FetchFn: func(_ context.Context, rawurl string) (*kiosque.Download, error) {
				assert.Equal(t, "https://www.courrierinternational.com/issue/latest.pdf", rawurl)
				return &kiosque.Download{
					Body:     io.NopCloser(strings.NewReader("%PDF-1.4")),
					Filename: "latest.pdf",
				}, nil
			},
		},
	}

	cmd := &IssueCmd{Site: "courrier", Dir: dir}
	require.NoError(t, cmd.Run(deps))
	assert.True(t, loggedIn)

	data, err := os.ReadFile(filepath.Join(dir, "latest.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestIssueCmd_Unsupported(t *testing.T) {
	t.Parallel()

	handler := &mock.Site{
		NameFn:  func() string { return "lefigaro" },
		LoginFn: func(context.Context) error { return nil },
		LatestIssueURLFn: func(context.Context) (string, error) {
			return "", kiosque.Errorf(kiosque.ENOTIMPLEMENTED, "lefigaro does not support downloading PDF issues")
		},
	}

	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Resolver: &mock.Resolver{
			ResolveFn: func(context.Context, string) (kiosque.Site, error) { return handler, nil },
		},
	}

	cmd := &IssueCmd{Site: "lefigaro", Dir: "."}
	err := cmd.Run(deps)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "does not support downloading PDF issues")
}
