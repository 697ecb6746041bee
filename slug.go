package spectacle

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	multipleHyphens = regexp.MustCompile(`-+`)
)

// Slugify converts a title to a URL-safe slug.
// "L'Enfant de l'Arbre" -> "l-enfant-de-l-arbre".
// "Casse-Noisette" -> "casse-noisette".
// Titles without any Latin letters or digits slugify to "".
func Slugify(s string) string {
	// Decompose accented characters so the base letter survives.
	s = norm.NFKD.String(s)

	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	s = strings.ToLower(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = multipleHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ShowSlug returns the slug of a show, falling back to the source document's
// base name when the title has no sluggable characters.
func ShowSlug(title, sourcePath string) string {
	if slug := Slugify(title); slug != "" {
		return slug
	}
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimPrefix(base, "spectacle-")
	return Slugify(base)
}
