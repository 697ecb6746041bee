package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/edjs/spectacle"
)

// Ensure LoggingSubmitter implements spectacle.BatchSubmitter.
var _ spectacle.BatchSubmitter = (*LoggingSubmitter)(nil)

// LoggingSubmitter wraps a BatchSubmitter with logging of outcome counts.
type LoggingSubmitter struct {
	next   spectacle.BatchSubmitter
	logger *slog.Logger
}

// NewLoggingSubmitter creates a new LoggingSubmitter.
func NewLoggingSubmitter(next spectacle.BatchSubmitter, logger *slog.Logger) *LoggingSubmitter {
	return &LoggingSubmitter{next: next, logger: logger}
}

// SubmitBatch delegates to the wrapped submitter and logs the operation.
func (s *LoggingSubmitter) SubmitBatch(ctx context.Context, records []*spectacle.ShowRecord, collection string) (outcomes []spectacle.SubmissionOutcome, err error) {
	defer func(begin time.Time) {
		counts := make(map[spectacle.OutcomeKind]int, 3)
		for _, o := range outcomes {
			counts[o.Kind]++
		}
		s.logger.Info("submit batch",
			"collection", collection,
			"records", len(records),
			"stored", counts[spectacle.OutcomeStored],
			"rejected", counts[spectacle.OutcomeRejected],
			"transient", counts[spectacle.OutcomeTransient],
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SubmitBatch(ctx, records, collection)
}
