package main

import (
	"fmt"
	"strings"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	for _, s := range deps.Sites {
		aliases := strings.Join(s.Aliases(), ", ")
		fmt.Fprintf(deps.Stdout, "%-24s %-44s %s\n", s.Name(), s.BaseURL(), aliases)
	}
	return nil
}
