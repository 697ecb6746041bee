package spectacle_test

import (
	"testing"

	"github.com/edjs/spectacle"
	"github.com/stretchr/testify/assert"
)

func TestContainsKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		keyword string
		want    bool
	}{
		{name: "matches whole word", text: "Un conte pour enfants", keyword: "conte", want: true},
		{name: "ignores case", text: "Un CONTE pour enfants", keyword: "conte", want: true},
		{name: "matches inside a word", text: "Il raconte une histoire", keyword: "conte", want: true},
		{name: "matches at text boundaries", text: "ballet", keyword: "ballet", want: true},
		{name: "matches arabic script", text: "باللغة العربية فقط", keyword: "العربية", want: true},
		{name: "matches prefixed arabic", text: "مسرحية بالعربية", keyword: "العربية", want: true},
		{name: "reports absent keyword", text: "Un spectacle de danse", keyword: "conte", want: false},
		{name: "empty keyword never matches", text: "anything", keyword: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, spectacle.ContainsKeyword(tt.text, tt.keyword))
		})
	}
}

func TestMatchKeywords(t *testing.T) {
	t.Parallel()

	rules := spectacle.DefaultVocabulary().Categories

	t.Run("last matching rule overwrites earlier ones", func(t *testing.T) {
		t.Parallel()

		got, ok := spectacle.MatchKeywords("un ballet avec des marionnettes et un conte", rules)

		assert.True(t, ok)
		assert.Equal(t, spectacle.CategoryMarionnettes, got)
	})

	t.Run("order is fixed regardless of position in text", func(t *testing.T) {
		t.Parallel()

		got, ok := spectacle.MatchKeywords("Ballet puis Musical", rules)

		assert.True(t, ok)
		assert.Equal(t, spectacle.CategoryBallet, got)
	})

	t.Run("matches keywords inside words", func(t *testing.T) {
		t.Parallel()

		got, ok := spectacle.MatchKeywords("Il raconte une histoire", rules)

		assert.True(t, ok)
		assert.Equal(t, spectacle.CategoryConte, got)
	})

	t.Run("reports no match", func(t *testing.T) {
		t.Parallel()

		_, ok := spectacle.MatchKeywords("rien à signaler", rules)

		assert.False(t, ok)
	})
}

func TestContainsMarker(t *testing.T) {
	t.Parallel()

	markers := []string{"logo", "icon"}

	assert.True(t, spectacle.ContainsMarker("assets/edjs-logo.png", markers))
	assert.True(t, spectacle.ContainsMarker("assets/ICONS/star.svg", markers))
	assert.False(t, spectacle.ContainsMarker("assets/charlotte1.jpg", markers))
}

func TestDefaultVocabulary_ReturnsFreshValue(t *testing.T) {
	t.Parallel()

	v := spectacle.DefaultVocabulary()
	v.ExcludedAssetMarkers[0] = "changed"

	assert.Equal(t, "logo", spectacle.DefaultVocabulary().ExcludedAssetMarkers[0])
}
