// Package slog provides logging decorators for spectacle services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/edjs/spectacle"
)

// Ensure LoggingLoader implements spectacle.Loader.
var _ spectacle.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with logging.
type LoggingLoader struct {
	next   spectacle.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next spectacle.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, path string) (doc *spectacle.ParsedDocument, err error) {
	defer func(begin time.Time) {
		size := 0
		if doc != nil {
			size = len(doc.Raw)
		}
		l.logger.Info("load",
			"path", path,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, path)
}
