package main

import (
	"fmt"

	"github.com/edjs/spectacle"
)

// Run executes the update command.
func (c *UpdateCmd) Run(deps *Dependencies) error {
	upd := spectacle.ShowUpdate{
		Title:       c.Title,
		Description: c.Description,
		Synopsis:    c.Synopsis,
		Duration:    c.Duration,
		Price:       c.Price,
	}
	if c.Status != nil {
		status := spectacle.Status(*c.Status)
		upd.Status = &status
	}

	if upd == (spectacle.ShowUpdate{}) {
		err := spectacle.Errorf(spectacle.EINVALID, "nothing to update")
		fmt.Fprintf(deps.Stderr, "error: %s\n", spectacle.ErrorMessage(err))
		return err
	}

	show, err := deps.Shows.UpdateShow(deps.Ctx, c.ID, upd)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spectacle.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated show %q (%s)\n", show.Title, show.ID)
	return nil
}
