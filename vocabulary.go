package spectacle

import "strings"

// KeywordRule maps a set of keywords to the value they select.
type KeywordRule[T any] struct {
	Value    T
	Keywords []string
}

// Vocabulary is the fixed configuration the extractor chains are built from:
// selectors, unit tokens, month abbreviations, keyword tables and asset
// markers. Token matching is case-insensitive.
type Vocabulary struct {
	// Structural selectors. Group selectors match in document order.
	TitleSelector       string
	DescriptionSelector string
	ParagraphSelector   string
	CastSelector        string
	TechnicalSelector   string
	ImageSelector       string

	// DescriptionMetaName is the name of the description meta tag.
	DescriptionMetaName string

	// SynopsisMinLength is the length, in characters, a paragraph must
	// exceed to qualify as synopsis.
	SynopsisMinLength int

	// Free-text unit tokens. Longer alternatives go first.
	MinuteUnits   []string
	CurrencyUnits []string
	AgeConnectors []string
	AgeUnits      []string

	VenueKeywords  []string
	VenueConnector []string
	MaxVenueTokens int

	MonthAbbreviations []string

	// Categories and Languages are tested in order; a later match
	// overwrites an earlier one.
	Categories []KeywordRule[Category]
	Languages  []KeywordRule[Language]

	ExcludedAssetMarkers []string
	GalleryMarkers       []string
	GalleryClass         string
}

// DefaultVocabulary returns the vocabulary of the show catalog.
// Each call returns a fresh value.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		TitleSelector:       "h1, .spectacle-title, .title",
		DescriptionSelector: ".description, .synopsis, .spectacle-description, p",
		ParagraphSelector:   "p",
		CastSelector:        ".cast, .acteur, .artiste",
		TechnicalSelector:   ".technique, .technical, .info-technique",
		ImageSelector:       "img",
		DescriptionMetaName: "description",

		SynopsisMinLength: 100,

		MinuteUnits:   []string{"minutes", "minute", "mins", "min", "mn"},
		CurrencyUnits: []string{"dirhams", "dirham", "DHS", "DH", "MAD"},
		AgeConnectors: []string{"-", "–", "à", "a", "to"},
		AgeUnits:      []string{"ans", "an"},

		VenueKeywords:  []string{"Théâtre", "Theatre", "Opéra", "Centre"},
		VenueConnector: []string{"de", "du", "des", "la", "le"},
		MaxVenueTokens: 6,

		MonthAbbreviations: []string{"Jan", "Fév", "Mar", "Avr", "Mai", "Jun", "Jul", "Aoû", "Sep", "Oct", "Nov", "Déc"},

		Categories: []KeywordRule[Category]{
			{Value: CategoryMusical, Keywords: []string{"musical", "musicale", "comédie musicale"}},
			{Value: CategoryConte, Keywords: []string{"conte", "contes"}},
			{Value: CategoryBallet, Keywords: []string{"ballet", "ballets"}},
			{Value: CategoryMarionnettes, Keywords: []string{"marionnettes", "marionnette"}},
		},
		Languages: []KeywordRule[Language]{
			{Value: LanguageArabe, Keywords: []string{"arabe", "العربية"}},
			{Value: LanguageBilingue, Keywords: []string{"bilingue"}},
		},

		ExcludedAssetMarkers: []string{"logo", "icon"},
		GalleryMarkers:       []string{"gallery"},
		GalleryClass:         "gallery",
	}
}

// ContainsMarker reports whether s contains any of the markers,
// ignoring case. Markers match anywhere, including inside words.
func ContainsMarker(s string, markers []string) bool {
	lower := strings.ToLower(s)
	for _, m := range markers {
		if m != "" && strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// ContainsKeyword reports whether text contains keyword anywhere, ignoring
// case. Keywords match inside longer words, so "raconte" holds "conte" and
// "بالعربية" holds "العربية".
func ContainsKeyword(text, keyword string) bool {
	return keyword != "" && strings.Contains(strings.ToLower(text), strings.ToLower(keyword))
}

// MatchKeywords evaluates rules in order against text and returns the value
// of the last rule with a matching keyword.
func MatchKeywords[T any](text string, rules []KeywordRule[T]) (T, bool) {
	var (
		value T
		found bool
	)
	lower := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				value, found = rule.Value, true
				break
			}
		}
	}
	return value, found
}
