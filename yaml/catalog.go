// Package yaml loads show catalogs from YAML files.
package yaml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/edjs/spectacle"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// File is the on-disk shape of a catalog.
//
//	baseDir: ./pages
//	shows:
//	  - displayName: Charlotte
//	    sourcePath: spectacle-charlotte.html
type File struct {
	BaseDir string                   `yaml:"baseDir"`
	Shows   []spectacle.CatalogEntry `yaml:"shows" validate:"required,min=1,dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report YAML key names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Parse decodes and validates a catalog file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalWithOptions(data, &f, yaml.DisallowUnknownField()); err != nil {
		return nil, spectacle.Errorf(spectacle.EMALFORMED, "invalid catalog: %s", yaml.FormatError(err, false, false))
	}
	if err := validate.Struct(&f); err != nil {
		return nil, formatError(err)
	}
	return &f, nil
}

// LoadCatalog reads the catalog file at path and builds a resolver from it.
// A relative baseDir in the file is resolved against the file's directory;
// a non-empty baseDir argument overrides the file's value.
func LoadCatalog(path, baseDir string) (*spectacle.Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, spectacle.Errorf(spectacle.ENOTFOUND, "catalog file not found: %s", path)
	} else if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if baseDir == "" {
		baseDir = f.BaseDir
		if baseDir != "" && !filepath.IsAbs(baseDir) {
			baseDir = filepath.Join(filepath.Dir(path), baseDir)
		}
	}
	return spectacle.NewCatalog(baseDir, f.Shows)
}

func formatError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", e.Namespace(), friendlyMessage(e)))
	}
	return spectacle.Errorf(spectacle.EINVALID, "invalid catalog: %s", strings.Join(msgs, "; "))
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must have at least " + e.Param() + " entry"
	default:
		return "is invalid"
	}
}
