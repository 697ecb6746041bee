package spectacle_test

import (
	"path/filepath"
	"testing"

	"github.com/edjs/spectacle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Resolve(t *testing.T) {
	t.Parallel()

	base := filepath.Join("srv", "edjs")
	catalog, err := spectacle.NewCatalog(base, spectacle.DefaultCatalogEntries())
	require.NoError(t, err)

	t.Run("resolves a known name against the base directory", func(t *testing.T) {
		t.Parallel()

		path, err := catalog.Resolve("Charlotte")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "spectacle-charlotte.html"), path)
	})

	t.Run("resolves arabic-script aliases", func(t *testing.T) {
		t.Parallel()

		path, err := catalog.Resolve("الأمير الصغير")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "spectacle-le-petit-prince.html"), path)
	})

	t.Run("returns ENOTFOUND for unknown names", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.Resolve("Nonexistent Show")

		assert.Equal(t, spectacle.ENOTFOUND, spectacle.ErrorCode(err))
	})

	t.Run("matches exactly", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"charlotte", "Charlotte ", "Charl"} {
			_, err := catalog.Resolve(name)
			assert.Equal(t, spectacle.ENOTFOUND, spectacle.ErrorCode(err), name)
		}
	})

	t.Run("keeps absolute source paths", func(t *testing.T) {
		t.Parallel()

		abs := filepath.Join(t.TempDir(), "show.html")
		c, err := spectacle.NewCatalog(base, []spectacle.CatalogEntry{{DisplayName: "Show", SourcePath: abs}})
		require.NoError(t, err)

		path, err := c.Resolve("Show")

		require.NoError(t, err)
		assert.Equal(t, abs, path)
	})
}

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("rejects duplicate names", func(t *testing.T) {
		t.Parallel()

		_, err := spectacle.NewCatalog("", []spectacle.CatalogEntry{
			{DisplayName: "Antigone", SourcePath: "a.html"},
			{DisplayName: "Antigone", SourcePath: "b.html"},
		})

		assert.Equal(t, spectacle.EINVALID, spectacle.ErrorCode(err))
	})

	t.Run("rejects incomplete entries", func(t *testing.T) {
		t.Parallel()

		_, err := spectacle.NewCatalog("", []spectacle.CatalogEntry{{DisplayName: "Antigone"}})

		assert.Equal(t, spectacle.EINVALID, spectacle.ErrorCode(err))
	})

	t.Run("allows several names for one document", func(t *testing.T) {
		t.Parallel()

		c, err := spectacle.NewCatalog("", []spectacle.CatalogEntry{
			{DisplayName: "Le Petit Prince", SourcePath: "spectacle-le-petit-prince.html"},
			{DisplayName: "الأمير الصغير", SourcePath: "spectacle-le-petit-prince.html"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"Le Petit Prince", "الأمير الصغير"}, c.Names())
	})

	t.Run("entries are copied", func(t *testing.T) {
		t.Parallel()

		c, err := spectacle.NewCatalog("", spectacle.DefaultCatalogEntries())
		require.NoError(t, err)

		entries := c.Entries()
		entries[0].DisplayName = "changed"

		assert.Equal(t, "Charlotte", c.Entries()[0].DisplayName)
	})
}
