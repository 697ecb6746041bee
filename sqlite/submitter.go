package sqlite

import (
	"context"

	"github.com/edjs/spectacle"
)

// Compile-time interface verification.
var _ spectacle.BatchSubmitter = (*Submitter)(nil)

// Submitter implements spectacle.BatchSubmitter on top of ShowService.
// Every record is inserted in its own statement, so one record's failure
// never rolls back another.
type Submitter struct {
	shows *ShowService
}

// NewSubmitter creates a new Submitter.
func NewSubmitter(shows *ShowService) *Submitter {
	return &Submitter{shows: shows}
}

// SubmitBatch stores each record in collection. Input records are not
// modified.
func (s *Submitter) SubmitBatch(ctx context.Context, records []*spectacle.ShowRecord, collection string) ([]spectacle.SubmissionOutcome, error) {
	if collection == "" {
		return nil, spectacle.Errorf(spectacle.EINVALID, "target collection required")
	}

	outcomes := make([]spectacle.SubmissionOutcome, len(records))
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			outcomes[i] = spectacle.TransientFailure(err.Error())
			continue
		}
		if rec == nil {
			outcomes[i] = spectacle.Rejected(spectacle.EINVALID, "nil record")
			continue
		}

		show := *rec
		show.ID = ""
		show.Collection = collection
		if err := s.shows.CreateShow(ctx, &show); err != nil {
			outcomes[i] = spectacle.OutcomeFromError(err)
			continue
		}
		outcomes[i] = spectacle.Stored(show.ID)
	}
	return outcomes, nil
}
