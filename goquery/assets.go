package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/edjs/spectacle"
)

// collectAssets classifies every image reference in document order.
// Excluded markers are checked first, so a reference carrying both an
// excluded and a gallery marker is dropped. Each set is deduplicated
// independently, keeping the first occurrence.
func (e *Extractor) collectAssets(doc *goquery.Document) spectacle.Assets {
	assets := spectacle.Assets{
		Images:          []string{},
		Gallery:         []string{},
		ExcludedMarkers: e.vocab.ExcludedAssetMarkers,
	}
	if e.vocab.ImageSelector == "" {
		return assets
	}

	seenImages := make(map[string]struct{})
	seenGallery := make(map[string]struct{})

	doc.Find(e.vocab.ImageSelector).Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || src == "" {
			return
		}
		if spectacle.ContainsMarker(src, e.vocab.ExcludedAssetMarkers) {
			return
		}

		if e.isGallery(s, src) {
			if _, dup := seenGallery[src]; !dup {
				seenGallery[src] = struct{}{}
				assets.Gallery = append(assets.Gallery, src)
			}
			return
		}
		if _, dup := seenImages[src]; !dup {
			seenImages[src] = struct{}{}
			assets.Images = append(assets.Images, src)
		}
	})
	return assets
}

func (e *Extractor) isGallery(s *goquery.Selection, src string) bool {
	if spectacle.ContainsMarker(src, e.vocab.GalleryMarkers) {
		return true
	}
	return e.vocab.GalleryClass != "" && s.HasClass(e.vocab.GalleryClass)
}
