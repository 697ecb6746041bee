package pipeline_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/edjs/spectacle"
	"github.com/edjs/spectacle/mock"
	"github.com/edjs/spectacle/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(titles ...string) []*spectacle.ShowRecord {
	out := make([]*spectacle.ShowRecord, len(titles))
	for i, title := range titles {
		out[i] = &spectacle.ShowRecord{Title: title}
	}
	return out
}

// recordingSubmitter answers each call with fn and records the titles it saw.
type recordingSubmitter struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recordingSubmitter) mock(fn func(call int, batch []*spectacle.ShowRecord) ([]spectacle.SubmissionOutcome, error)) *mock.BatchSubmitter {
	return &mock.BatchSubmitter{
		SubmitBatchFn: func(_ context.Context, batch []*spectacle.ShowRecord, _ string) ([]spectacle.SubmissionOutcome, error) {
			r.mu.Lock()
			titles := make([]string, len(batch))
			for i, rec := range batch {
				titles[i] = rec.Title
			}
			r.calls = append(r.calls, titles)
			call := len(r.calls)
			r.mu.Unlock()
			return fn(call, batch)
		},
	}
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	t.Run("retries only the transient subset", func(t *testing.T) {
		t.Parallel()

		var rec recordingSubmitter
		submitter := rec.mock(func(call int, batch []*spectacle.ShowRecord) ([]spectacle.SubmissionOutcome, error) {
			if call == 1 {
				return []spectacle.SubmissionOutcome{
					spectacle.Rejected(spectacle.ECONFLICT, "duplicate slug"),
					spectacle.TransientFailure("database is busy"),
					spectacle.Stored("id-3"),
				}, nil
			}
			return []spectacle.SubmissionOutcome{spectacle.Stored("id-2")}, nil
		})

		outcomes, err := pipeline.Submit(context.Background(), submitter, records("Charlotte", "Antigone", "Estuaires"), "spectacles",
			pipeline.SubmitOptions{RetryDelays: []time.Duration{0}})

		require.NoError(t, err)
		assert.Equal(t, []spectacle.SubmissionOutcome{
			spectacle.Rejected(spectacle.ECONFLICT, "duplicate slug"),
			spectacle.Stored("id-2"),
			spectacle.Stored("id-3"),
		}, outcomes)
		assert.Equal(t, [][]string{{"Charlotte", "Antigone", "Estuaires"}, {"Antigone"}}, rec.calls)
	})

	t.Run("leaves transient outcomes once retries run out", func(t *testing.T) {
		t.Parallel()

		var rec recordingSubmitter
		submitter := rec.mock(func(_ int, batch []*spectacle.ShowRecord) ([]spectacle.SubmissionOutcome, error) {
			out := make([]spectacle.SubmissionOutcome, len(batch))
			for i := range out {
				out[i] = spectacle.TransientFailure("database is busy")
			}
			return out, nil
		})

		var logged int
		outcomes, err := pipeline.Submit(context.Background(), submitter, records("Charlotte"), "spectacles",
			pipeline.SubmitOptions{
				RetryDelays: []time.Duration{0, 0},
				Logger:      func(string, ...any) { logged++ },
			})

		require.NoError(t, err)
		assert.True(t, outcomes[0].Retryable())
		assert.Len(t, rec.calls, 3)
		assert.Equal(t, 2, logged)
	})

	t.Run("does not retry with empty delays", func(t *testing.T) {
		t.Parallel()

		var rec recordingSubmitter
		submitter := rec.mock(func(int, []*spectacle.ShowRecord) ([]spectacle.SubmissionOutcome, error) {
			return []spectacle.SubmissionOutcome{spectacle.TransientFailure("busy")}, nil
		})

		_, err := pipeline.Submit(context.Background(), submitter, records("Charlotte"), "spectacles",
			pipeline.SubmitOptions{RetryDelays: []time.Duration{}})

		require.NoError(t, err)
		assert.Len(t, rec.calls, 1)
	})

	t.Run("marks a failed batch transient", func(t *testing.T) {
		t.Parallel()

		var rec recordingSubmitter
		submitter := rec.mock(func(call int, batch []*spectacle.ShowRecord) ([]spectacle.SubmissionOutcome, error) {
			if call == 1 {
				return nil, errors.New("connection reset")
			}
			return []spectacle.SubmissionOutcome{spectacle.Stored("a"), spectacle.Stored("b")}, nil
		})

		outcomes, err := pipeline.Submit(context.Background(), submitter, records("Charlotte", "Antigone"), "spectacles",
			pipeline.SubmitOptions{RetryDelays: []time.Duration{0}})

		require.NoError(t, err)
		assert.Equal(t, []spectacle.SubmissionOutcome{spectacle.Stored("a"), spectacle.Stored("b")}, outcomes)
	})

	t.Run("rejects every record of a batch refused as a whole", func(t *testing.T) {
		t.Parallel()

		var rec recordingSubmitter
		submitter := rec.mock(func(int, []*spectacle.ShowRecord) ([]spectacle.SubmissionOutcome, error) {
			return nil, spectacle.Errorf(spectacle.EINVALID, "target collection required")
		})

		outcomes, err := pipeline.Submit(context.Background(), submitter, records("Charlotte", "Antigone"), "",
			pipeline.SubmitOptions{RetryDelays: []time.Duration{0}})

		require.NoError(t, err)
		assert.Len(t, rec.calls, 1)
		for _, o := range outcomes {
			assert.Equal(t, spectacle.OutcomeRejected, o.Kind)
			assert.Equal(t, spectacle.EINVALID, o.Code)
			assert.Equal(t, "target collection required", o.Reason)
		}
	})

	t.Run("keeps stored records when a later batch is refused", func(t *testing.T) {
		t.Parallel()

		// Given: the first batch stores, the second is refused as a whole
		var rec recordingSubmitter
		submitter := rec.mock(func(call int, _ []*spectacle.ShowRecord) ([]spectacle.SubmissionOutcome, error) {
			switch call {
			case 1:
				return []spectacle.SubmissionOutcome{spectacle.Stored("id-1")}, nil
			case 2:
				return nil, spectacle.Errorf(spectacle.ECONFLICT, "bad batch")
			}
			return []spectacle.SubmissionOutcome{spectacle.Stored("id-3")}, nil
		})

		// When
		outcomes, err := pipeline.Submit(context.Background(), submitter, records("Charlotte", "Antigone", "Estuaires"), "spectacles",
			pipeline.SubmitOptions{BatchSize: 1})

		// Then: every record keeps its own outcome
		require.NoError(t, err)
		assert.Equal(t, []spectacle.SubmissionOutcome{
			spectacle.Stored("id-1"),
			spectacle.Rejected(spectacle.ECONFLICT, "bad batch"),
			spectacle.Stored("id-3"),
		}, outcomes)
		assert.Len(t, rec.calls, 3)
	})

	t.Run("returns EINTERNAL for misaligned outcomes", func(t *testing.T) {
		t.Parallel()

		submitter := &mock.BatchSubmitter{
			SubmitBatchFn: func(context.Context, []*spectacle.ShowRecord, string) ([]spectacle.SubmissionOutcome, error) {
				return []spectacle.SubmissionOutcome{spectacle.Stored("a")}, nil
			},
		}

		outcomes, err := pipeline.Submit(context.Background(), submitter, records("Charlotte", "Antigone"), "spectacles", pipeline.SubmitOptions{})

		assert.Equal(t, spectacle.EINTERNAL, spectacle.ErrorCode(err))
		assert.Len(t, outcomes, 2)
	})

	t.Run("splits records into batches", func(t *testing.T) {
		t.Parallel()

		var rec recordingSubmitter
		submitter := rec.mock(func(_ int, batch []*spectacle.ShowRecord) ([]spectacle.SubmissionOutcome, error) {
			out := make([]spectacle.SubmissionOutcome, len(batch))
			for i, r := range batch {
				out[i] = spectacle.Stored(r.Title)
			}
			return out, nil
		})

		outcomes, err := pipeline.Submit(context.Background(), submitter, records("a", "b", "c", "d", "e"), "spectacles",
			pipeline.SubmitOptions{BatchSize: 2, RateLimit: 1000})

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, rec.calls)
		for i, title := range []string{"a", "b", "c", "d", "e"} {
			assert.Equal(t, title, outcomes[i].StorageID)
		}
	})

	t.Run("stops retrying at the timeout", func(t *testing.T) {
		t.Parallel()

		submitter := &mock.BatchSubmitter{
			SubmitBatchFn: func(context.Context, []*spectacle.ShowRecord, string) ([]spectacle.SubmissionOutcome, error) {
				return []spectacle.SubmissionOutcome{spectacle.TransientFailure("busy")}, nil
			},
		}

		outcomes, err := pipeline.Submit(context.Background(), submitter, records("Charlotte"), "spectacles",
			pipeline.SubmitOptions{Timeout: 10 * time.Millisecond, RetryDelays: []time.Duration{time.Hour}})

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		require.Len(t, outcomes, 1)
		assert.True(t, outcomes[0].Retryable())
	})

	t.Run("returns no outcomes for no records", func(t *testing.T) {
		t.Parallel()

		outcomes, err := pipeline.Submit(context.Background(), &mock.BatchSubmitter{}, nil, "spectacles", pipeline.SubmitOptions{})

		require.NoError(t, err)
		assert.Empty(t, outcomes)
	})
}
