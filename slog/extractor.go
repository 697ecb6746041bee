package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/edjs/spectacle"
)

// Ensure LoggingExtractor implements spectacle.FieldExtractor.
var _ spectacle.FieldExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a FieldExtractor with debug logging of the tier
// each field was resolved by.
type LoggingExtractor struct {
	next   spectacle.FieldExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next spectacle.FieldExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, doc *spectacle.ParsedDocument) (fields *spectacle.Fields, err error) {
	defer func(begin time.Time) {
		args := []any{"path", doc.Path, "duration", time.Since(begin), "err", err}
		if fields != nil {
			var defaulted int
			for _, p := range fields.Provenances() {
				if p == spectacle.ProvenanceDefault {
					defaulted++
				}
			}
			args = append(args,
				"defaulted", defaulted,
				"images", len(fields.Assets.Images),
				"gallery", len(fields.Assets.Gallery),
			)
		}
		e.logger.Debug("extract", args...)
	}(time.Now())
	return e.next.Extract(ctx, doc)
}
