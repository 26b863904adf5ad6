package htmltomarkdown_test

import (
	"testing"

	"github.com/kiosque/kiosque"
	"github.com/kiosque/kiosque/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements kiosque.Converter at compile time.
var _ kiosque.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Title</h1><h2>Subtitle</h2>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
	})

	t.Run("converts blockquotes", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<blockquote>A quote.</blockquote>`)

		require.NoError(t, err)
		assert.Contains(t, md, "> A quote.")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Visit <a href="https://example.com">Example</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>First</li><li>Second</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
	})

	t.Run("drops presentation attributes", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p style="color: red" class="lead">Text</p>`)

		require.NoError(t, err)
		assert.NotContains(t, md, "style")
		assert.NotContains(t, md, "lead")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  \n ")

		require.Error(t, err)
		assert.Equal(t, kiosque.EINVALID, kiosque.ErrorCode(err))
	})
}
