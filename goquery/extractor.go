// Package goquery implements field extraction over parsed show pages using
// CSS selectors and free-text patterns.
package goquery

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/edjs/spectacle"
	"golang.org/x/sync/errgroup"
)

// Ensure Extractor implements spectacle.FieldExtractor at compile time.
var _ spectacle.FieldExtractor = (*Extractor)(nil)

// page is the read-only input every rule sees.
type page struct {
	doc *goquery.Document
	raw string
}

// Extractor runs one extractor chain per show field and the asset collector
// over a parsed document. An Extractor is immutable and safe for
// concurrent use.
type Extractor struct {
	vocab spectacle.Vocabulary
	pat   patterns

	title         spectacle.Chain[*page, string]
	description   spectacle.Chain[*page, string]
	synopsis      spectacle.Chain[*page, string]
	duration      spectacle.Chain[*page, int]
	ageRange      spectacle.Chain[*page, string]
	price         spectacle.Chain[*page, int]
	venue         spectacle.Chain[*page, string]
	dates         spectacle.Chain[*page, string]
	category      spectacle.Chain[*page, spectacle.Category]
	language      spectacle.Chain[*page, spectacle.Language]
	cast          spectacle.Chain[*page, []string]
	technicalInfo spectacle.Chain[*page, string]
}

// NewExtractor builds the extractor chains from vocab.
func NewExtractor(vocab spectacle.Vocabulary) *Extractor {
	e := &Extractor{vocab: vocab, pat: compilePatterns(vocab)}

	e.title = spectacle.Chain[*page, string]{
		Rules: []spectacle.Rule[*page, string]{
			structural(func(p *page) (string, bool) { return e.firstText(p, vocab.TitleSelector) }),
		},
	}
	e.description = spectacle.Chain[*page, string]{
		Rules: []spectacle.Rule[*page, string]{
			{Provenance: spectacle.ProvenanceMeta, Match: e.metaDescription},
			structural(func(p *page) (string, bool) { return e.firstNonEmptyText(p, vocab.DescriptionSelector) }),
		},
	}
	e.synopsis = spectacle.Chain[*page, string]{
		Rules: []spectacle.Rule[*page, string]{structural(e.longestParagraph)},
	}
	e.duration = spectacle.Chain[*page, int]{
		Rules:   []spectacle.Rule[*page, int]{pattern(func(p *page) (int, bool) { return firstInt(e.pat.duration, p.raw) })},
		Default: spectacle.DefaultDuration,
	}
	e.ageRange = spectacle.Chain[*page, string]{
		Rules:   []spectacle.Rule[*page, string]{pattern(func(p *page) (string, bool) { return ageRange(e.pat.ageRange, p.raw) })},
		Default: spectacle.DefaultAgeRange,
	}
	e.price = spectacle.Chain[*page, int]{
		Rules:   []spectacle.Rule[*page, int]{pattern(func(p *page) (int, bool) { return firstInt(e.pat.price, p.raw) })},
		Default: spectacle.DefaultPrice,
	}
	e.venue = spectacle.Chain[*page, string]{
		Rules:   []spectacle.Rule[*page, string]{pattern(func(p *page) (string, bool) { return firstSpan(e.pat.venue, p.raw) })},
		Default: spectacle.DefaultVenue,
	}
	e.dates = spectacle.Chain[*page, string]{
		Rules:   []spectacle.Rule[*page, string]{pattern(func(p *page) (string, bool) { return firstSpan(e.pat.dates, p.raw) })},
		Default: spectacle.DefaultDates,
	}
	e.category = spectacle.Chain[*page, spectacle.Category]{
		Rules: []spectacle.Rule[*page, spectacle.Category]{{
			Provenance: spectacle.ProvenanceKeyword,
			Match: func(p *page) (spectacle.Category, bool) {
				return spectacle.MatchKeywords(p.raw, vocab.Categories)
			},
		}},
		Default: spectacle.DefaultCategory,
	}
	e.language = spectacle.Chain[*page, spectacle.Language]{
		Rules: []spectacle.Rule[*page, spectacle.Language]{{
			Provenance: spectacle.ProvenanceKeyword,
			Match: func(p *page) (spectacle.Language, bool) {
				return spectacle.MatchKeywords(p.raw, vocab.Languages)
			},
		}},
		Default: spectacle.DefaultLanguage,
	}
	e.cast = spectacle.Chain[*page, []string]{
		Rules: []spectacle.Rule[*page, []string]{structural(e.castMembers)},
	}
	e.technicalInfo = spectacle.Chain[*page, string]{
		Rules: []spectacle.Rule[*page, string]{structural(e.technicalNotes)},
	}
	return e
}

// Extract runs every field chain and the asset collector over doc. The two
// share the same read-only tree and run concurrently.
func (e *Extractor) Extract(ctx context.Context, doc *spectacle.ParsedDocument) (*spectacle.Fields, error) {
	if doc == nil || doc.Root == nil {
		return nil, spectacle.Errorf(spectacle.EINVALID, "document has no parsed tree")
	}
	p := &page{doc: goquery.NewDocumentFromNode(doc.Root), raw: doc.Raw}

	var f spectacle.Fields
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		f.Title = e.title.Run(p)
		f.Description = e.description.Run(p)
		f.Synopsis = e.synopsis.Run(p)
		f.Duration = e.duration.Run(p)
		f.AgeRange = e.ageRange.Run(p)
		f.Price = e.price.Run(p)
		f.Venue = e.venue.Run(p)
		f.Dates = e.dates.Run(p)
		f.Category = e.category.Run(p)
		f.Language = e.language.Run(p)
		f.Cast = e.cast.Run(p)
		f.TechnicalInfo = e.technicalInfo.Run(p)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		f.Assets = e.collectAssets(p.doc)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &f, nil
}

func structural[T any](fn func(*page) (T, bool)) spectacle.Rule[*page, T] {
	return spectacle.Rule[*page, T]{Provenance: spectacle.ProvenanceStructural, Match: fn}
}

func pattern[T any](fn func(*page) (T, bool)) spectacle.Rule[*page, T] {
	return spectacle.Rule[*page, T]{Provenance: spectacle.ProvenancePattern, Match: fn}
}

// firstText returns the trimmed text of the first element matching selector
// in document order.
func (e *Extractor) firstText(p *page, selector string) (string, bool) {
	if selector == "" {
		return "", false
	}
	text := strings.TrimSpace(p.doc.Find(selector).First().Text())
	return text, text != ""
}

func (e *Extractor) firstNonEmptyText(p *page, selector string) (string, bool) {
	if selector == "" {
		return "", false
	}
	var text string
	p.doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text = strings.TrimSpace(s.Text())
		return text == ""
	})
	return text, text != ""
}

func (e *Extractor) metaDescription(p *page) (string, bool) {
	if e.vocab.DescriptionMetaName == "" {
		return "", false
	}
	var content string
	p.doc.Find("meta[name]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		name, _ := s.Attr("name")
		if !strings.EqualFold(name, e.vocab.DescriptionMetaName) {
			return true
		}
		content, _ = s.Attr("content")
		content = strings.TrimSpace(content)
		return false
	})
	return content, content != ""
}

// longestParagraph returns the longest paragraph whose length in characters
// exceeds the synopsis threshold. Ties keep the earliest paragraph.
func (e *Extractor) longestParagraph(p *page) (string, bool) {
	if e.vocab.ParagraphSelector == "" {
		return "", false
	}
	var (
		best    string
		bestLen = e.vocab.SynopsisMinLength
	)
	p.doc.Find(e.vocab.ParagraphSelector).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if n := utf8.RuneCountInString(text); n > bestLen {
			best, bestLen = text, n
		}
	})
	return best, best != ""
}

func (e *Extractor) castMembers(p *page) ([]string, bool) {
	if e.vocab.CastSelector == "" {
		return nil, false
	}
	var cast []string
	p.doc.Find(e.vocab.CastSelector).Each(func(_ int, s *goquery.Selection) {
		if name := strings.TrimSpace(s.Text()); name != "" {
			cast = append(cast, name)
		}
	})
	return cast, len(cast) > 0
}

func (e *Extractor) technicalNotes(p *page) (string, bool) {
	if e.vocab.TechnicalSelector == "" {
		return "", false
	}
	var notes []string
	p.doc.Find(e.vocab.TechnicalSelector).Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			notes = append(notes, text)
		}
	})
	info := strings.Join(notes, " ")
	return info, info != ""
}
