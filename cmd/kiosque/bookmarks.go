package main

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/kiosque/kiosque"
)

// Run executes the bookmarks command.
func (c *BookmarksCmd) Run(deps *Dependencies) error {
	if len(deps.Bookmarks) == 0 {
		fmt.Fprintln(deps.Stdout, "No bookmark services configured. Add a raindrop or github token to the configuration file.")
		return nil
	}

	if c.Archive != "" {
		return c.archive(deps)
	}
	return c.list(deps)
}

func (c *BookmarksCmd) archive(deps *Dependencies) error {
	if c.Service == "" {
		return kiosque.Errorf(kiosque.EINVALID, "--archive requires --service")
	}
	svc, ok := deps.Bookmarks[c.Service]
	if !ok {
		return kiosque.Errorf(kiosque.EINVALID, "unknown or unconfigured service %q", c.Service)
	}
	if err := svc.Archive(deps.Ctx, c.Archive); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kiosque.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Archived %s on %s\n", c.Archive, c.Service)
	return nil
}

// list fetches each service concurrently. A failing service reports its
// error but does not hide the others' results.
func (c *BookmarksCmd) list(deps *Dependencies) error {
	var names []string
	for name := range deps.Bookmarks {
		if c.Service != "" && name != c.Service {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return kiosque.Errorf(kiosque.EINVALID, "unknown or unconfigured service %q", c.Service)
	}
	sort.Strings(names)

	results := make([][]kiosque.Bookmark, len(names))
	errs := make([]error, len(names))

	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			results[i], errs[i] = deps.Bookmarks[name].List(deps.Ctx)
			return nil
		})
	}
	_ = g.Wait()

	var failed error
	for i, name := range names {
		if errs[i] != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", name, kiosque.ErrorMessage(errs[i]))
			failed = errs[i]
			continue
		}
		for _, b := range results[i] {
			title := b.Title
			if title == "" {
				title = b.URL
			}
			fmt.Fprintf(deps.Stdout, "%-10s %-12s %s\n    %s\n", name, b.ID, title, b.URL)
		}
	}
	return failed
}
