package main

import (
	"fmt"

	"github.com/edjs/spectacle"
	"github.com/edjs/spectacle/pipeline"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	records, err := extractRecords(deps, c.Selection)
	if err != nil {
		return err
	}

	opts := deps.Submit
	opts.Timeout = c.Timeout
	opts.BatchSize = c.BatchSize
	opts.RateLimit = c.RateLimit

	outcomes, err := pipeline.Submit(deps.Ctx, deps.Submitter, records, c.Collection, opts)
	if err != nil && outcomes == nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spectacle.ErrorMessage(err))
		return err
	}

	var stored, failed int
	for i, o := range outcomes {
		rec := records[i]
		switch o.Kind {
		case spectacle.OutcomeStored:
			stored++
			fmt.Fprintf(deps.Stdout, "stored    %s  %s\n", o.StorageID, rec.DisplayName)
		case spectacle.OutcomeRejected:
			failed++
			fmt.Fprintf(deps.Stdout, "rejected  %s: %s\n", rec.DisplayName, o.Reason)
		default:
			failed++
			fmt.Fprintf(deps.Stdout, "failed    %s: %s\n", rec.DisplayName, o.Reason)
		}
	}
	fmt.Fprintf(deps.Stdout, "Imported %d of %d shows into %q\n", stored, len(records), c.Collection)

	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if stored == 0 && failed > 0 {
		code := outcomes[0].Code
		if code == "" {
			code = spectacle.EUNAVAILABLE
		}
		return spectacle.Errorf(code, "no show stored")
	}
	return nil
}
