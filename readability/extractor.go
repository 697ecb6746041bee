// Package readability extracts the main content of show pages for export
// using Mozilla's Readability algorithm.
package readability

import (
	"fmt"
	"strings"

	"github.com/edjs/spectacle"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements spectacle.ContentExtractor at compile time.
var _ spectacle.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main content of a show page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes a raw show page and returns its main content.
func (e *Extractor) Extract(rawHTML string) (*spectacle.ContentResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, spectacle.Errorf(spectacle.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, fmt.Errorf("readability: %w", err)
	}

	return &spectacle.ContentResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
