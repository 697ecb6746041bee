package slog

import (
	"log/slog"

	"github.com/edjs/spectacle"
)

// Ensure LoggingCatalog implements spectacle.CatalogResolver.
var _ spectacle.CatalogResolver = (*LoggingCatalog)(nil)

// LoggingCatalog wraps a CatalogResolver and logs unresolved names.
type LoggingCatalog struct {
	next   spectacle.CatalogResolver
	logger *slog.Logger
}

// NewLoggingCatalog creates a new LoggingCatalog.
func NewLoggingCatalog(next spectacle.CatalogResolver, logger *slog.Logger) *LoggingCatalog {
	return &LoggingCatalog{next: next, logger: logger}
}

// Resolve delegates to the wrapped catalog. Failed lookups are logged as
// warnings; successful ones at debug level.
func (c *LoggingCatalog) Resolve(displayName string) (string, error) {
	path, err := c.next.Resolve(displayName)
	if err != nil {
		c.logger.Warn("resolve", "name", displayName, "err", err)
		return path, err
	}
	c.logger.Debug("resolve", "name", displayName, "path", path)
	return path, nil
}

// Entries delegates to the wrapped catalog.
func (c *LoggingCatalog) Entries() []spectacle.CatalogEntry {
	return c.next.Entries()
}
