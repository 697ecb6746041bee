package mock

import (
	"context"

	"github.com/edjs/spectacle"
)

var _ spectacle.BatchSubmitter = (*BatchSubmitter)(nil)

// BatchSubmitter is a mock implementation of spectacle.BatchSubmitter.
type BatchSubmitter struct {
	SubmitBatchFn func(ctx context.Context, records []*spectacle.ShowRecord, collection string) ([]spectacle.SubmissionOutcome, error)
}

func (s *BatchSubmitter) SubmitBatch(ctx context.Context, records []*spectacle.ShowRecord, collection string) ([]spectacle.SubmissionOutcome, error) {
	return s.SubmitBatchFn(ctx, records, collection)
}
