package htmltomarkdown_test

import (
	"testing"

	"github.com/edjs/spectacle"
	"github.com/edjs/spectacle/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements spectacle.Converter at compile time.
var _ spectacle.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts a show synopsis", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<h1>Charlotte</h1><p>Une histoire de <strong>courage</strong>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Charlotte")
		assert.Contains(t, md, "Une histoire de **courage**.")
	})

	t.Run("converts cast lists", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<ul><li>Amina</li><li>Youssef</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- Amina")
		assert.Contains(t, md, "- Youssef")
	})

	t.Run("converts technical tables", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<table>
<thead><tr><th>Plateau</th><th>Montage</th></tr></thead>
<tbody><tr><td>8x6 m</td><td>2 h</td></tr></tbody>
</table>`)

		require.NoError(t, err)
		assert.Contains(t, md, "| Plateau")
		assert.Contains(t, md, "8x6 m")
	})

	t.Run("keeps images", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<img src="assets/charlotte1.jpg" alt="Affiche">`)

		require.NoError(t, err)
		assert.Contains(t, md, "![Affiche](assets/charlotte1.jpg)")
	})

	t.Run("resolves assets against a base", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithAssetBase("https://theatre.example.ma/"))
		md, err := conv.Convert(`<img src="assets/charlotte1.jpg" alt="Affiche">`)

		require.NoError(t, err)
		assert.Contains(t, md, "https://theatre.example.ma/assets/charlotte1.jpg")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("<p>Antigone</p>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "Antigone", md)
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		assert.Equal(t, spectacle.EINVALID, spectacle.ErrorCode(err))
	})
}
