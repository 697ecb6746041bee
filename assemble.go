package spectacle

// Assemble merges extracted fields into a ShowRecord, applying field-level
// defaults for every field whose chain found nothing. The title falls back
// to the catalog display name and the synopsis to the description.
//
// Assets are checked against the markers the collector excluded by. A
// record that still breaks the completeness contract after defaults is a
// defect in the default policy and is reported as EINTERNAL rather than
// returned.
func Assemble(displayName, sourcePath string, f *Fields) (*ShowRecord, error) {
	if f == nil {
		f = &Fields{}
	}

	rec := &ShowRecord{
		DisplayName:   displayName,
		SourcePath:    sourcePath,
		Title:         f.Title.Value,
		Description:   f.Description.Value,
		Synopsis:      f.Synopsis.Value,
		Duration:      f.Duration.Value,
		AgeRange:      f.AgeRange.Value,
		Price:         f.Price.Value,
		Venue:         f.Venue.Value,
		Dates:         f.Dates.Value,
		Category:      f.Category.Value,
		Language:      f.Language.Value,
		Images:        nonNil(f.Assets.Images),
		Gallery:       nonNil(f.Assets.Gallery),
		Cast:          nonNil(f.Cast.Value),
		TechnicalInfo: f.TechnicalInfo.Value,
		Status:        StatusDraft,
	}

	if !f.Title.Found || rec.Title == "" {
		rec.Title = displayName
	}
	if !f.Synopsis.Found || rec.Synopsis == "" {
		rec.Synopsis = rec.Description
	}
	if !f.Duration.Found {
		rec.Duration = DefaultDuration
	}
	if !f.AgeRange.Found || rec.AgeRange == "" {
		rec.AgeRange = DefaultAgeRange
	}
	if !f.Price.Found {
		rec.Price = DefaultPrice
	}
	if !f.Venue.Found || rec.Venue == "" {
		rec.Venue = DefaultVenue
	}
	if !f.Dates.Found || rec.Dates == "" {
		rec.Dates = DefaultDates
	}
	if !f.Category.Found || !rec.Category.Valid() {
		rec.Category = DefaultCategory
	}
	if !f.Language.Found || !rec.Language.Valid() {
		rec.Language = DefaultLanguage
	}

	rec.Slug = ShowSlug(rec.Title, sourcePath)

	if err := rec.ValidateWith(f.Assets.ExcludedMarkers); err != nil {
		return nil, Errorf(EINTERNAL, "assemble %q: %s", displayName, ErrorMessage(err))
	}
	return rec, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
