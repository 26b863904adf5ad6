package main

import (
	"context"
	"io"

	"github.com/kiosque/kiosque"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Resolver  kiosque.Resolver
	Sites     []kiosque.Site
	Client    kiosque.Client
	Documents kiosque.DocumentService
	Bookmarks map[string]kiosque.BookmarkService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Read      ReadCmd      `cmd:"" help:"Download an article as a markdown document"`
	Issue     IssueCmd     `cmd:"" help:"Download a site's latest PDF issue"`
	Sites     SitesCmd     `cmd:"" help:"List supported sites and their aliases"`
	Bookmarks BookmarksCmd `cmd:"" help:"List or archive bookmarks from configured services"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	URL    string `arg:"" help:"Article URL (http or https)"`
	Output string `short:"o" help:"Output filename (default: {date}-{slug}.md)"`
	Dir    string `short:"d" default:"." help:"Output directory"`
	Stdout bool   `help:"Print the document instead of writing a file"`
}

// IssueCmd is the "issue" subcommand.
type IssueCmd struct {
	Site string `arg:"" help:"Site alias or base URL"`
	Dir  string `short:"d" default:"." help:"Output directory"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}

// BookmarksCmd is the "bookmarks" subcommand.
type BookmarksCmd struct {
	Service string `short:"s" help:"Restrict to one service (raindrop, github)"`
	Archive string `short:"a" help:"Archive the bookmark with this ID (requires --service)"`
}
