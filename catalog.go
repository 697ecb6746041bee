package spectacle

import "path/filepath"

// CatalogEntry maps a display name to its source document.
type CatalogEntry struct {
	DisplayName string `json:"displayName" yaml:"displayName" validate:"required"`
	SourcePath  string `json:"sourcePath" yaml:"sourcePath" validate:"required"`
}

// CatalogResolver resolves display names to source document paths.
type CatalogResolver interface {
	// Resolve returns the path of the named show's source document.
	// Returns ENOTFOUND if the name is not cataloged.
	Resolve(displayName string) (string, error)

	// Entries returns every cataloged show in declaration order.
	Entries() []CatalogEntry
}

var _ CatalogResolver = (*Catalog)(nil)

// Catalog is an immutable exact-match table of show documents.
// Names are compared byte for byte: no case folding, trimming or
// partial matching.
type Catalog struct {
	baseDir string
	paths   map[string]string
	entries []CatalogEntry
}

// NewCatalog creates a Catalog resolving relative source paths against baseDir.
// Returns EINVALID if an entry is incomplete or a display name repeats.
func NewCatalog(baseDir string, entries []CatalogEntry) (*Catalog, error) {
	c := &Catalog{
		baseDir: baseDir,
		paths:   make(map[string]string, len(entries)),
		entries: make([]CatalogEntry, 0, len(entries)),
	}
	for _, e := range entries {
		if e.DisplayName == "" || e.SourcePath == "" {
			return nil, Errorf(EINVALID, "catalog entry requires display name and source path")
		}
		if _, ok := c.paths[e.DisplayName]; ok {
			return nil, Errorf(EINVALID, "duplicate catalog entry %q", e.DisplayName)
		}
		c.paths[e.DisplayName] = e.SourcePath
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Resolve returns the path of the named show's source document.
func (c *Catalog) Resolve(displayName string) (string, error) {
	p, ok := c.paths[displayName]
	if !ok {
		return "", Errorf(ENOTFOUND, "no source document cataloged for %q", displayName)
	}
	if filepath.IsAbs(p) || c.baseDir == "" {
		return p, nil
	}
	return filepath.Join(c.baseDir, p), nil
}

// Entries returns every cataloged show in declaration order.
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Names returns every cataloged display name in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.DisplayName
	}
	return names
}

// DefaultCatalogEntries returns the built-in show catalog.
// Arabic-script names are aliases listed explicitly, never derived.
func DefaultCatalogEntries() []CatalogEntry {
	return []CatalogEntry{
		{DisplayName: "Charlotte", SourcePath: "spectacle-charlotte.html"},
		{DisplayName: "تارا إلى القمر", SourcePath: "spectacle-tara-sur-la-lune.html"},
		{DisplayName: "L'Eau-Là", SourcePath: "spectacle-leau-la.html"},
		{DisplayName: "L'Enfant de l'Arbre", SourcePath: "spectacle-lenfant-de-larbre.html"},
		{DisplayName: "Alice chez les Merveilles", SourcePath: "spectacle-alice-chez-les-merveilles.html"},
		{DisplayName: "الأمير الصغير", SourcePath: "spectacle-le-petit-prince.html"},
		{DisplayName: "Simple Comme Bonjour", SourcePath: "spectacle-simple-comme-bonjour.html"},
		{DisplayName: "Estuaires", SourcePath: "spectacle-estevanico.html"},
		{DisplayName: "Antigone", SourcePath: "spectacle-antigone.html"},
		{DisplayName: "Casse-Noisette", SourcePath: "spectacle-casse-noisette.html"},
	}
}
