package sqlite_test

import (
	"context"
	"testing"

	"github.com/edjs/spectacle"
	"github.com/edjs/spectacle/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitter_SubmitBatch(t *testing.T) {
	t.Parallel()

	t.Run("stores records independently", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewShowService(setupTestDB(t))
		submitter := sqlite.NewSubmitter(svc)
		ctx := context.Background()

		invalid := newShow("Antigone")
		invalid.Title = ""
		records := []*spectacle.ShowRecord{
			newShow("Charlotte"),
			newShow("Charlotte"),
			invalid,
			newShow("Estuaires"),
		}

		outcomes, err := submitter.SubmitBatch(ctx, records, "spectacles")
		require.NoError(t, err)
		require.Len(t, outcomes, 4)

		assert.Equal(t, spectacle.OutcomeStored, outcomes[0].Kind)
		assert.Equal(t, spectacle.Rejected(spectacle.ECONFLICT, "show already exists in collection"), outcomes[1])
		assert.Equal(t, spectacle.OutcomeRejected, outcomes[2].Kind)
		assert.Equal(t, spectacle.EINVALID, outcomes[2].Code)
		assert.False(t, outcomes[2].Retryable())
		assert.Equal(t, spectacle.OutcomeStored, outcomes[3].Kind)

		// The first record survives the failures that follow it.
		stored, err := svc.FindShowByID(ctx, outcomes[0].StorageID)
		require.NoError(t, err)
		assert.Equal(t, "spectacles", stored.Collection)
		_, err = svc.FindShowByID(ctx, outcomes[3].StorageID)
		require.NoError(t, err)
	})

	t.Run("does not modify input records", func(t *testing.T) {
		t.Parallel()

		submitter := sqlite.NewSubmitter(sqlite.NewShowService(setupTestDB(t)))
		rec := newShow("Charlotte")

		_, err := submitter.SubmitBatch(context.Background(), []*spectacle.ShowRecord{rec}, "spectacles")
		require.NoError(t, err)

		assert.Empty(t, rec.ID)
		assert.Empty(t, rec.Collection)
	})

	t.Run("reports store failures as transient", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())
		submitter := sqlite.NewSubmitter(sqlite.NewShowService(db))

		outcomes, err := submitter.SubmitBatch(context.Background(), []*spectacle.ShowRecord{newShow("Charlotte")}, "spectacles")
		require.NoError(t, err)

		require.Len(t, outcomes, 1)
		assert.True(t, outcomes[0].Retryable())
	})

	t.Run("reports remaining records as transient after cancellation", func(t *testing.T) {
		t.Parallel()

		submitter := sqlite.NewSubmitter(sqlite.NewShowService(setupTestDB(t)))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		outcomes, err := submitter.SubmitBatch(ctx, []*spectacle.ShowRecord{newShow("Charlotte"), nil}, "spectacles")
		require.NoError(t, err)

		assert.Equal(t, spectacle.OutcomeTransient, outcomes[0].Kind)
		assert.Equal(t, spectacle.OutcomeTransient, outcomes[1].Kind)
	})

	t.Run("rejects nil records", func(t *testing.T) {
		t.Parallel()

		submitter := sqlite.NewSubmitter(sqlite.NewShowService(setupTestDB(t)))

		outcomes, err := submitter.SubmitBatch(context.Background(), []*spectacle.ShowRecord{nil}, "spectacles")
		require.NoError(t, err)

		assert.Equal(t, spectacle.OutcomeRejected, outcomes[0].Kind)
	})

	t.Run("returns EINVALID without a collection", func(t *testing.T) {
		t.Parallel()

		submitter := sqlite.NewSubmitter(sqlite.NewShowService(setupTestDB(t)))

		_, err := submitter.SubmitBatch(context.Background(), []*spectacle.ShowRecord{newShow("Charlotte")}, "")

		assert.Equal(t, spectacle.EINVALID, spectacle.ErrorCode(err))
	})
}
