package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/edjs/spectacle"
	"github.com/goccy/go-yaml"
)

// Ensure FileStore implements spectacle.PageStore at compile time.
var _ spectacle.PageStore = (*FileStore)(nil)

// FileStore implements spectacle.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the page to <slug>.md in the temporary directory.
func (s *FileStore) Save(ctx context.Context, page *spectacle.ExportPage) error {
	if page.Record == nil || page.Record.Slug == "" {
		return spectacle.Errorf(spectacle.EINVALID, "exported page requires a record slug")
	}
	if strings.ContainsAny(page.Record.Slug, `/\`) || strings.Contains(page.Record.Slug, "..") {
		return spectacle.Errorf(spectacle.EINVALID, "path traversal in slug %q", page.Record.Slug)
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	content, err := FormatPage(page)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.tempDir(), page.Record.Slug+".md"), []byte(content), 0644)
}

// Commit replaces the output directory with the saved pages.
func (s *FileStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved pages.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// frontmatter is the YAML header of an exported page.
type frontmatter struct {
	Title         string   `yaml:"title"`
	Slug          string   `yaml:"slug"`
	Source        string   `yaml:"source"`
	Category      string   `yaml:"category"`
	Language      string   `yaml:"language"`
	Duration      int      `yaml:"duration"`
	AgeRange      string   `yaml:"ageRange"`
	Price         int      `yaml:"price"`
	Venue         string   `yaml:"venue"`
	Dates         string   `yaml:"dates"`
	Images        []string `yaml:"images,omitempty"`
	Gallery       []string `yaml:"gallery,omitempty"`
	Cast          []string `yaml:"cast,omitempty"`
	TechnicalInfo string   `yaml:"technicalInfo,omitempty"`
}

// FormatPage formats a page as markdown with YAML frontmatter.
func FormatPage(page *spectacle.ExportPage) (string, error) {
	r := page.Record
	header, err := yaml.Marshal(frontmatter{
		Title:         r.Title,
		Slug:          r.Slug,
		Source:        filepath.Base(r.SourcePath),
		Category:      string(r.Category),
		Language:      string(r.Language),
		Duration:      r.Duration,
		AgeRange:      r.AgeRange,
		Price:         r.Price,
		Venue:         r.Venue,
		Dates:         r.Dates,
		Images:        r.Images,
		Gallery:       r.Gallery,
		Cast:          r.Cast,
		TechnicalInfo: r.TechnicalInfo,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(page.Body)
	return b.String(), nil
}
