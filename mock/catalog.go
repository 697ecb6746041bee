package mock

import "github.com/edjs/spectacle"

var _ spectacle.CatalogResolver = (*CatalogResolver)(nil)

// CatalogResolver is a mock implementation of spectacle.CatalogResolver.
type CatalogResolver struct {
	ResolveFn func(displayName string) (string, error)
	EntriesFn func() []spectacle.CatalogEntry
}

func (c *CatalogResolver) Resolve(displayName string) (string, error) {
	return c.ResolveFn(displayName)
}

func (c *CatalogResolver) Entries() []spectacle.CatalogEntry {
	return c.EntriesFn()
}
