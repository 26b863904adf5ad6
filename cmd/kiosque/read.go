package main

import (
	"fmt"

	"github.com/kiosque/kiosque"
	"github.com/kiosque/kiosque/fs"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.RenderDocument(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kiosque.ErrorMessage(err))
		return err
	}

	if c.Stdout {
		fmt.Fprint(deps.Stdout, fs.FormatDocument(doc))
		return nil
	}

	path, err := fs.NewWriter(c.Dir).WriteDocument(doc, c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %s\n", path)
	return nil
}
