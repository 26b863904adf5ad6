package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosque/kiosque"
	"github.com/kiosque/kiosque/mock"
	kioslog "github.com/kiosque/kiosque/slog"
)

func TestLoggingDocumentService_RenderDocument(t *testing.T) {
	t.Parallel()

	t.Run("logs render with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentService{
			RenderDocumentFn: func(_ context.Context, _ string) (*kiosque.Document, error) {
				return &kiosque.Document{Body: "0123456789"}, nil
			},
		}

		svc := kioslog.NewLoggingDocumentService(inner, logger)
		doc, err := svc.RenderDocument(context.Background(), "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, "0123456789", doc.Body)
		output := buf.String()
		assert.Contains(t, output, "render document")
		assert.Contains(t, output, "input=https://example.com/a")
		assert.Contains(t, output, "bytes=10")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentService{
			RenderDocumentFn: func(_ context.Context, urlOrAlias string) (*kiosque.Document, error) {
				return nil, kiosque.Errorf(kiosque.EUNSUPPORTED, "unsupported URL or alias: %q", urlOrAlias)
			},
		}

		svc := kioslog.NewLoggingDocumentService(inner, logger)
		_, err := svc.RenderDocument(context.Background(), "https://unknown.example/a")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "unsupported URL or alias")
	})
}

func TestLoggingResolver_Resolve(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	inner := &mock.Resolver{
		ResolveFn: func(_ context.Context, _ string) (kiosque.Site, error) {
			return &mock.Site{NameFn: func() string { return "lemonde" }}, nil
		},
	}

	r := kioslog.NewLoggingResolver(inner, logger)
	site, err := r.Resolve(context.Background(), "lemonde")

	require.NoError(t, err)
	assert.Equal(t, "lemonde", site.Name())
	output := buf.String()
	assert.Contains(t, output, "resolve")
	assert.Contains(t, output, "handler=lemonde")
}
