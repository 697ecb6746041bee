package main

import (
	"fmt"

	"github.com/edjs/spectacle"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter spectacle.ShowFilter
	if c.Collection != "" {
		filter.Collection = &c.Collection
	}
	if c.Status != "" {
		status := spectacle.Status(c.Status)
		if !status.Valid() {
			err := spectacle.Errorf(spectacle.EINVALID, "unknown status %q", c.Status)
			fmt.Fprintf(deps.Stderr, "error: %s\n", spectacle.ErrorMessage(err))
			return err
		}
		filter.Status = &status
	}

	shows, err := deps.Shows.FindShows(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spectacle.ErrorMessage(err))
		return err
	}

	if len(shows) == 0 {
		fmt.Fprintln(deps.Stdout, "No shows found. Use 'spectacle import' to add some.")
		return nil
	}

	for _, s := range shows {
		fmt.Fprintf(deps.Stdout, "%s  %-10s  %-9s  %s\n", s.ID, s.Collection, s.Status, s.Title)
	}
	return nil
}
