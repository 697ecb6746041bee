package mock

import "github.com/edjs/spectacle"

var _ spectacle.Converter = (*Converter)(nil)

// Converter is a mock implementation of spectacle.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
