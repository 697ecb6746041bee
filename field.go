package spectacle

import "context"

// Provenance names the tier of an extractor chain that produced a value.
// It is informational only.
type Provenance string

// Extraction tiers, from most to least precise.
const (
	ProvenanceStructural Provenance = "structural"
	ProvenanceMeta       Provenance = "meta"
	ProvenancePattern    Provenance = "pattern"
	ProvenanceKeyword    Provenance = "keyword"
	ProvenanceDefault    Provenance = "default"
)

// Field is the result of running one field's extractor chain.
// Found is false when the value is the chain's hard default.
type Field[T any] struct {
	Value      T          `json:"value"`
	Provenance Provenance `json:"provenance"`
	Found      bool       `json:"found"`
}

// Rule is one candidate-selection rule of a chain. Match reports whether it
// produced a non-empty value for the input.
type Rule[In, T any] struct {
	Provenance Provenance
	Match      func(In) (T, bool)
}

// Chain is an ordered list of rules evaluated first-match-wins, followed by
// a hard default.
type Chain[In, T any] struct {
	Rules   []Rule[In, T]
	Default T
}

// Run evaluates the rules in order and returns the first match.
// If no rule matches, the chain's default is returned.
func (c Chain[In, T]) Run(in In) Field[T] {
	for _, r := range c.Rules {
		if v, ok := r.Match(in); ok {
			return Field[T]{Value: v, Provenance: r.Provenance, Found: true}
		}
	}
	return Field[T]{Value: c.Default, Provenance: ProvenanceDefault}
}

// Assets holds the classified media references of a document.
type Assets struct {
	Images  []string `json:"images"`
	Gallery []string `json:"gallery"`

	// ExcludedMarkers are the markers the collector dropped assets by.
	ExcludedMarkers []string `json:"-"`
}

// Fields holds one extracted field per show record field.
type Fields struct {
	Title         Field[string]   `json:"title"`
	Description   Field[string]   `json:"description"`
	Synopsis      Field[string]   `json:"synopsis"`
	Duration      Field[int]      `json:"duration"`
	AgeRange      Field[string]   `json:"ageRange"`
	Price         Field[int]      `json:"price"`
	Venue         Field[string]   `json:"venue"`
	Dates         Field[string]   `json:"dates"`
	Category      Field[Category] `json:"category"`
	Language      Field[Language] `json:"language"`
	Cast          Field[[]string] `json:"cast"`
	TechnicalInfo Field[string]   `json:"technicalInfo"`

	Assets Assets `json:"assets"`
}

// Provenances returns the provenance of every field keyed by its JSON name.
func (f *Fields) Provenances() map[string]Provenance {
	return map[string]Provenance{
		"title":         f.Title.Provenance,
		"description":   f.Description.Provenance,
		"synopsis":      f.Synopsis.Provenance,
		"duration":      f.Duration.Provenance,
		"ageRange":      f.AgeRange.Provenance,
		"price":         f.Price.Provenance,
		"venue":         f.Venue.Provenance,
		"dates":         f.Dates.Provenance,
		"category":      f.Category.Provenance,
		"language":      f.Language.Provenance,
		"cast":          f.Cast.Provenance,
		"technicalInfo": f.TechnicalInfo.Provenance,
	}
}

// FieldExtractor runs every field's extractor chain and the asset collector
// over a parsed document. Extraction never fails for a missing field;
// errors only report cancellation.
type FieldExtractor interface {
	Extract(ctx context.Context, doc *ParsedDocument) (*Fields, error)
}
