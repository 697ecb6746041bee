// Package htmltomarkdown renders the main content of a show page as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/edjs/spectacle"
)

var _ spectacle.Converter = (*Converter)(nil)

// Converter renders show content with CommonMark and table support; the
// technical sheets are laid out as tables.
type Converter struct {
	conv      *converter.Converter
	assetBase string
}

// Option configures a Converter.
type Option func(*Converter)

// WithAssetBase resolves relative image and link paths against base, so an
// exported page still shows its posters when moved away from the site.
func WithAssetBase(base string) Option {
	return func(c *Converter) {
		c.assetBase = strings.TrimSuffix(base, "/")
	}
}

func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert returns the Markdown for html without surrounding blank lines.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", spectacle.Errorf(spectacle.EINVALID, "no show content to convert")
	}

	var opts []converter.ConvertOptionFunc
	if c.assetBase != "" {
		opts = append(opts, converter.WithDomain(c.assetBase))
	}
	md, err := c.conv.ConvertString(html, opts...)
	if err != nil {
		return "", spectacle.Errorf(spectacle.EINTERNAL, "render show content: %v", err)
	}
	return strings.TrimSpace(md), nil
}
