package pipeline

import (
	"context"
	"time"

	"github.com/edjs/spectacle"
	"golang.org/x/time/rate"
)

// SubmitOptions configures Submit.
type SubmitOptions struct {
	// Timeout bounds the whole submission, retries included.
	// Zero means no bound beyond ctx.
	Timeout time.Duration

	// RetryDelays are the waits before each retry of the transient subset.
	// Nil uses DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	// BatchSize splits records into batches of at most this many.
	// Zero submits everything in one batch.
	BatchSize int

	// RateLimit bounds the batches sent per second. Zero means unlimited.
	RateLimit float64

	// Logger, if set, is called for each retry round.
	Logger LogFunc
}

// Submit sends records to submitter and returns one outcome per record, in
// input order. Records with a TransientFailure outcome are resubmitted
// with backoff until they succeed, are rejected, or retries run out;
// Rejected records are never resubmitted.
//
// A batch-level EINVALID or ECONFLICT error rejects every record of that
// batch; any other batch-level error marks that batch transient. Either way
// the remaining batches are still submitted. If ctx ends first, or the
// submitter misreports its outcomes, the outcomes so far are returned with
// the error.
func Submit(ctx context.Context, submitter spectacle.BatchSubmitter, records []*spectacle.ShowRecord, collection string, opts SubmitOptions) ([]spectacle.SubmissionOutcome, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	delays := opts.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	outcomes := make([]spectacle.SubmissionOutcome, len(records))
	pending := make([]int, len(records))
	for i := range records {
		pending[i] = i
		outcomes[i] = spectacle.TransientFailure("not submitted")
	}

	for attempt := 0; len(pending) > 0; attempt++ {
		for _, batch := range chunk(pending, opts.BatchSize) {
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					return outcomes, ctxErr(ctx, err)
				}
			}
			if err := submitBatch(ctx, submitter, records, collection, batch, outcomes); err != nil {
				return outcomes, err
			}
		}

		pending = retryable(pending, outcomes)
		if len(pending) == 0 || attempt >= len(delays) {
			break
		}

		if opts.Logger != nil {
			opts.Logger("retry %d transient record(s) (attempt %d)", len(pending), attempt+2)
		}
		if err := sleep(ctx, delays[attempt]); err != nil {
			return outcomes, err
		}
	}

	return outcomes, nil
}

// submitBatch submits the records at indices and stores their outcomes.
func submitBatch(ctx context.Context, submitter spectacle.BatchSubmitter, records []*spectacle.ShowRecord, collection string, indices []int, outcomes []spectacle.SubmissionOutcome) error {
	batch := make([]*spectacle.ShowRecord, len(indices))
	for i, idx := range indices {
		batch[i] = records[idx]
	}

	got, err := submitter.SubmitBatch(ctx, batch, collection)
	if err != nil {
		outcome := spectacle.TransientFailure(err.Error())
		switch code := spectacle.ErrorCode(err); code {
		case spectacle.EINVALID, spectacle.ECONFLICT:
			outcome = spectacle.Rejected(code, spectacle.ErrorMessage(err))
		}
		for _, idx := range indices {
			outcomes[idx] = outcome
		}
		return nil
	}
	if len(got) != len(indices) {
		return spectacle.Errorf(spectacle.EINTERNAL, "submitter returned %d outcomes for %d records", len(got), len(indices))
	}

	for i, idx := range indices {
		outcomes[idx] = got[i]
	}
	return nil
}

func retryable(indices []int, outcomes []spectacle.SubmissionOutcome) []int {
	var out []int
	for _, idx := range indices {
		if outcomes[idx].Retryable() {
			out = append(out, idx)
		}
	}
	return out
}

func chunk(indices []int, size int) [][]int {
	if size <= 0 || size >= len(indices) {
		return [][]int{indices}
	}
	var chunks [][]int
	for start := 0; start < len(indices); start += size {
		end := min(start+size, len(indices))
		chunks = append(chunks, indices[start:end])
	}
	return chunks
}

// ctxErr returns the context's error if it has ended, otherwise err.
func ctxErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
