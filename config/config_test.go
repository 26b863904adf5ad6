package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kiosque/kiosque"
	"github.com/kiosque/kiosque/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
proxy: socks5://127.0.0.1:9050

sites:
  "https://www.lemonde.fr/":
    aliases: [lemonde]
    username: reader@example.com
    password: s3cret
  "https://www.nytimes.com/":
    cookie_nyt_s: abcdef

raindrop:
  token: rd-token
github:
  token: gh-token
`

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	t.Run("site credentials", func(t *testing.T) {
		creds, ok := cfg.Credentials("https://www.lemonde.fr/")
		require.True(t, ok)
		assert.Equal(t, "reader@example.com", creds["username"])
		assert.Equal(t, "s3cret", creds["password"])
	})

	t.Run("trailing slash is optional", func(t *testing.T) {
		creds, ok := cfg.Credentials("https://www.nytimes.com")
		require.True(t, ok)
		assert.Equal(t, "abcdef", creds["cookie_nyt_s"])
	})

	t.Run("absent section is distinguishable", func(t *testing.T) {
		creds, ok := cfg.Credentials("https://www.theguardian.com/")
		assert.False(t, ok)
		assert.Nil(t, creds)
	})

	t.Run("aliases", func(t *testing.T) {
		assert.Equal(t, []string{"lemonde"}, cfg.Aliases("https://www.lemonde.fr/"))
		assert.Nil(t, cfg.Aliases("https://www.nytimes.com/"))
	})

	t.Run("service tokens", func(t *testing.T) {
		assert.Equal(t, "rd-token", cfg.Token("raindrop"))
		assert.Equal(t, "gh-token", cfg.Token("github"))
		assert.Empty(t, cfg.Token("pocket"))
	})

	t.Run("proxy", func(t *testing.T) {
		assert.Equal(t, "socks5://127.0.0.1:9050", cfg.Proxy)
	})
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte("sites: [not, a, map]"))
	require.Error(t, err)
	assert.Equal(t, kiosque.EINVALID, kiosque.ErrorCode(err))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields empty config", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		_, ok := cfg.Credentials("https://www.lemonde.fr/")
		assert.False(t, ok)
	})

	t.Run("reads file from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "kiosque.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		_, ok := cfg.Credentials("https://www.lemonde.fr/")
		assert.True(t, ok)
	})
}
