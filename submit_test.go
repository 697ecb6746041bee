package spectacle_test

import (
	"errors"
	"testing"

	"github.com/edjs/spectacle"
	"github.com/stretchr/testify/assert"
)

func TestOutcomeFromError(t *testing.T) {
	t.Parallel()

	t.Run("conflict is rejected", func(t *testing.T) {
		t.Parallel()

		o := spectacle.OutcomeFromError(spectacle.Errorf(spectacle.ECONFLICT, "slug taken"))

		assert.Equal(t, spectacle.OutcomeRejected, o.Kind)
		assert.Equal(t, spectacle.ECONFLICT, o.Code)
		assert.Equal(t, "slug taken", o.Reason)
		assert.False(t, o.Retryable())
	})

	t.Run("validation failure is rejected", func(t *testing.T) {
		t.Parallel()

		o := spectacle.OutcomeFromError(spectacle.Errorf(spectacle.EINVALID, "title required"))

		assert.Equal(t, spectacle.OutcomeRejected, o.Kind)
		assert.False(t, o.Retryable())
	})

	t.Run("other errors are transient", func(t *testing.T) {
		t.Parallel()

		o := spectacle.OutcomeFromError(errors.New("database is locked"))

		assert.Equal(t, spectacle.OutcomeTransient, o.Kind)
		assert.Equal(t, spectacle.EUNAVAILABLE, o.Code)
		assert.True(t, o.Retryable())
	})
}

func TestStored(t *testing.T) {
	t.Parallel()

	o := spectacle.Stored("abc")

	assert.Equal(t, spectacle.OutcomeStored, o.Kind)
	assert.Equal(t, "abc", o.StorageID)
	assert.False(t, o.Retryable())
}
