package main

import (
	"fmt"

	"github.com/edjs/spectacle"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return spectacle.Errorf(spectacle.EINVALID, "use --force to confirm deletion")
	}

	show, err := deps.Shows.FindShowByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spectacle.ErrorMessage(err))
		return err
	}

	if err := deps.Shows.DeleteShow(deps.Ctx, show.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spectacle.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted show %q\n", show.Title)
	return nil
}
