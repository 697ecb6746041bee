// Package trafilatura extracts the main content of show pages for export.
package trafilatura

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/edjs/spectacle"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements spectacle.ContentExtractor at compile time.
var _ spectacle.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main content of a show page.
// Images are kept so exported pages retain posters and gallery photos.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			IncludeImages:   true,
			ExcludeComments: true,
		},
	}
}

// Extract processes a raw show page and returns its main content.
// A page with no recognizable main content yields an empty ContentHTML.
func (e *Extractor) Extract(rawHTML string) (*spectacle.ContentResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, spectacle.Errorf(spectacle.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, fmt.Errorf("trafilatura: %w", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &spectacle.ContentResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
