package spectacle

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Category classifies a show.
type Category string

// Show categories.
const (
	CategoryTheatreJeunesse Category = "Théâtre Jeunesse"
	CategoryMusical         Category = "Musical"
	CategoryConte           Category = "Conte"
	CategoryBallet          Category = "Ballet"
	CategoryMarionnettes    Category = "Marionnettes"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTheatreJeunesse, CategoryMusical, CategoryConte, CategoryBallet, CategoryMarionnettes:
		return true
	}
	return false
}

// Language is the performance language of a show.
type Language string

// Performance languages.
const (
	LanguageFrancais Language = "Français"
	LanguageArabe    Language = "Arabe"
	LanguageBilingue Language = "Bilingue"
)

// Valid reports whether l is one of the known languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageFrancais, LanguageArabe, LanguageBilingue:
		return true
	}
	return false
}

// Status is the publication state of a stored show.
type Status string

// Publication states.
const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Field-level defaults applied when extraction finds nothing.
const (
	DefaultDuration = 60
	DefaultAgeRange = "4-16 ans"
	DefaultPrice    = 50
	DefaultVenue    = "Théâtre Mohammed V"
	DefaultDates    = "2025-2026"
	DefaultCategory = CategoryTheatreJeunesse
	DefaultLanguage = LanguageFrancais

	// DefaultAgeMin and DefaultAgeMax bound DefaultAgeRange.
	DefaultAgeMin = 4
	DefaultAgeMax = 16
)

// ShowRecord is the canonical structured record for one show.
type ShowRecord struct {
	ID          string `json:"id,omitempty"`
	Collection  string `json:"collection,omitempty"`
	Slug        string `json:"slug"`
	DisplayName string `json:"displayName"`
	SourcePath  string `json:"sourcePath"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Synopsis    string `json:"synopsis"`

	Duration int    `json:"duration"` // minutes
	AgeRange string `json:"ageRange"`
	Price    int    `json:"price"`
	Venue    string `json:"venue"`
	Dates    string `json:"dates"`

	Category Category `json:"category"`
	Language Language `json:"language"`

	Images  []string `json:"images"`
	Gallery []string `json:"gallery"`

	Cast          []string `json:"cast"`
	TechnicalInfo string   `json:"technicalInfo"`

	Status     Status    `json:"status"`
	SourceHash string    `json:"sourceHash,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}

// Validate returns an error if the record breaks the completeness contract.
// Assets are checked against the default vocabulary's excluded markers.
func (r *ShowRecord) Validate() error {
	return r.ValidateWith(DefaultVocabulary().ExcludedAssetMarkers)
}

// ValidateWith is Validate with the given excluded asset markers. A nil
// list skips the marker check.
func (r *ShowRecord) ValidateWith(excluded []string) error {
	if strings.TrimSpace(r.Title) == "" {
		return Errorf(EINVALID, "show title required")
	}
	if r.Duration < 0 {
		return Errorf(EINVALID, "show duration must not be negative")
	}
	if r.Price < 0 {
		return Errorf(EINVALID, "show price must not be negative")
	}
	if !r.Category.Valid() {
		return Errorf(EINVALID, "unknown show category %q", r.Category)
	}
	if !r.Language.Valid() {
		return Errorf(EINVALID, "unknown show language %q", r.Language)
	}
	if r.Status != "" && !r.Status.Valid() {
		return Errorf(EINVALID, "unknown show status %q", r.Status)
	}
	if err := validateAssets("images", r.Images, excluded); err != nil {
		return err
	}
	return validateAssets("gallery", r.Gallery, excluded)
}

func validateAssets(name string, assets []string, excluded []string) error {
	seen := make(map[string]struct{}, len(assets))
	for _, a := range assets {
		if _, ok := seen[a]; ok {
			return Errorf(EINVALID, "duplicate %s entry %q", name, a)
		}
		seen[a] = struct{}{}
		if ContainsMarker(a, excluded) {
			return Errorf(EINVALID, "excluded asset %q in %s", a, name)
		}
	}
	return nil
}

var ageBoundsRe = regexp.MustCompile(`^\s*(\d{1,3})\s*-\s*(\d{1,3})`)

// AgeBounds returns the lower and upper age of the record's age range.
// Unparseable ranges yield DefaultAgeMin and DefaultAgeMax.
func (r *ShowRecord) AgeBounds() (lo, hi int) {
	m := ageBoundsRe.FindStringSubmatch(r.AgeRange)
	if m == nil {
		return DefaultAgeMin, DefaultAgeMax
	}
	lo, _ = strconv.Atoi(m[1])
	hi, _ = strconv.Atoi(m[2])
	return lo, hi
}

// ShowService represents a record store for show records.
type ShowService interface {
	// CreateShow stores a new show in the given record's collection.
	// Returns ECONFLICT if the collection already holds the record's slug.
	CreateShow(ctx context.Context, show *ShowRecord) error

	// FindShowByID retrieves a show by ID.
	// Returns ENOTFOUND if show does not exist.
	FindShowByID(ctx context.Context, id string) (*ShowRecord, error)

	// FindShows retrieves shows matching the filter.
	FindShows(ctx context.Context, filter ShowFilter) ([]*ShowRecord, error)

	// UpdateShow updates an existing show.
	// Returns ENOTFOUND if show does not exist.
	UpdateShow(ctx context.Context, id string, upd ShowUpdate) (*ShowRecord, error)

	// DeleteShow permanently removes a show.
	// Returns ENOTFOUND if show does not exist.
	DeleteShow(ctx context.Context, id string) error
}

// ShowFilter represents a filter for FindShows.
type ShowFilter struct {
	ID         *string `json:"id"`
	Collection *string `json:"collection"`
	Slug       *string `json:"slug"`
	Status     *Status `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ShowUpdate represents fields that can be edited on a stored show.
type ShowUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Synopsis    *string `json:"synopsis"`
	Duration    *int    `json:"duration"`
	Price       *int    `json:"price"`
	Status      *Status `json:"status"`
}
