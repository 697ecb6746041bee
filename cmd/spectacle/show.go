package main

import (
	"fmt"

	"github.com/edjs/spectacle"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	show, err := deps.Shows.FindShowByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spectacle.ErrorMessage(err))
		return err
	}

	printRecord(deps.Stdout, show)
	if show.Description != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", show.Description)
	}
	if show.Synopsis != "" && show.Synopsis != show.Description {
		fmt.Fprintf(deps.Stdout, "\n%s\n", show.Synopsis)
	}
	return nil
}
