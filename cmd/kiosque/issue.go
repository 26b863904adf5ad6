package main

import (
	"fmt"

	"github.com/kiosque/kiosque"
	"github.com/kiosque/kiosque/fs"
)

// Run executes the issue command.
func (c *IssueCmd) Run(deps *Dependencies) error {
	handler, err := deps.Resolver.Resolve(deps.Ctx, c.Site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kiosque.ErrorMessage(err))
		return err
	}

	if err := handler.Login(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kiosque.ErrorMessage(err))
		return err
	}

	issueURL, err := handler.LatestIssueURL(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kiosque.ErrorMessage(err))
		return err
	}

	dl, err := deps.Client.Fetch(deps.Ctx, issueURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kiosque.ErrorMessage(err))
		return err
	}

	path, err := fs.NewWriter(c.Dir).WriteIssue(dl)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %s\n", path)
	return nil
}
