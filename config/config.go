// Package config loads the kiosque configuration file: per-site credentials
// keyed by base URL, bookmark-service tokens, and proxy settings.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kiosque/kiosque"
	"gopkg.in/yaml.v3"
)

// Ensure Config implements kiosque.CredentialsProvider at compile time.
var _ kiosque.CredentialsProvider = (*Config)(nil)

// SiteConfig is one site's section: free-form credential keys plus optional
// extra aliases for the CLI.
type SiteConfig struct {
	Aliases     []string          `yaml:"aliases"`
	Credentials map[string]string `yaml:",inline"`
}

// ServiceConfig holds a bookmark service's API token.
type ServiceConfig struct {
	Token string `yaml:"token"`
}

// Config is the parsed configuration file.
type Config struct {
	// Proxy is an optional outbound proxy URL (http, https, socks5).
	Proxy string `yaml:"proxy"`

	// Sites maps a handler's base URL to its credentials and aliases.
	Sites map[string]SiteConfig `yaml:"sites"`

	// Raindrop and GitHub hold bookmark-service tokens.
	Raindrop *ServiceConfig `yaml:"raindrop"`
	GitHub   *ServiceConfig `yaml:"github"`
}

// DefaultPath returns the default configuration file location,
// ~/.config/kiosque/kiosque.yaml, honoring $KIOSQUE_CONFIG.
func DefaultPath() string {
	if path := os.Getenv("KIOSQUE_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "kiosque.yaml"
	}
	return filepath.Join(dir, "kiosque", "kiosque.yaml")
}

// Load reads and parses the configuration file. A missing file is not an
// error: everything works anonymously without one.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	} else if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses configuration bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, kiosque.Errorf(kiosque.EINVALID, "invalid configuration: %v", err)
	}
	return &cfg, nil
}

// Credentials returns the credential section for a site's base URL. The
// boolean distinguishes "section absent" from "section present but empty".
// Base URLs match with or without a trailing slash.
func (c *Config) Credentials(baseURL string) (map[string]string, bool) {
	if c.Sites == nil {
		return nil, false
	}
	if site, ok := c.Sites[baseURL]; ok {
		return site.Credentials, true
	}
	trimmed := strings.TrimSuffix(baseURL, "/")
	for key, site := range c.Sites {
		if strings.TrimSuffix(key, "/") == trimmed {
			return site.Credentials, true
		}
	}
	return nil, false
}

// Aliases returns the extra aliases configured for a site's base URL.
func (c *Config) Aliases(baseURL string) []string {
	if c.Sites == nil {
		return nil
	}
	trimmed := strings.TrimSuffix(baseURL, "/")
	for key, site := range c.Sites {
		if strings.TrimSuffix(key, "/") == trimmed {
			return site.Aliases
		}
	}
	return nil
}

// Token returns the API token for a well-known service section
// ("raindrop" or "github"), or "" when the section is absent.
func (c *Config) Token(service string) string {
	switch service {
	case "raindrop":
		if c.Raindrop != nil {
			return c.Raindrop.Token
		}
	case "github":
		if c.GitHub != nil {
			return c.GitHub.Token
		}
	}
	return ""
}
