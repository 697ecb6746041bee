package spectacle

import "context"

// OutcomeKind classifies the result of submitting one record.
type OutcomeKind string

// Submission outcome kinds.
const (
	OutcomeStored    OutcomeKind = "stored"
	OutcomeRejected  OutcomeKind = "rejected"
	OutcomeTransient OutcomeKind = "transient"
)

// SubmissionOutcome is the per-record result of a batch submission.
// StorageID is set for stored records; Reason for the other kinds.
type SubmissionOutcome struct {
	Kind      OutcomeKind `json:"kind"`
	StorageID string      `json:"storageId,omitempty"`
	Reason    string      `json:"reason,omitempty"`
	Code      string      `json:"code,omitempty"`
}

// Stored returns a successful outcome.
func Stored(id string) SubmissionOutcome {
	return SubmissionOutcome{Kind: OutcomeStored, StorageID: id}
}

// Rejected returns a non-retryable outcome.
func Rejected(code, reason string) SubmissionOutcome {
	return SubmissionOutcome{Kind: OutcomeRejected, Code: code, Reason: reason}
}

// TransientFailure returns a retryable outcome.
func TransientFailure(reason string) SubmissionOutcome {
	return SubmissionOutcome{Kind: OutcomeTransient, Code: EUNAVAILABLE, Reason: reason}
}

// Retryable reports whether the record may be submitted again.
func (o SubmissionOutcome) Retryable() bool {
	return o.Kind == OutcomeTransient
}

// OutcomeFromError classifies a storage error. ECONFLICT and EINVALID are
// rejections; anything else is treated as transient.
func OutcomeFromError(err error) SubmissionOutcome {
	switch code := ErrorCode(err); code {
	case ECONFLICT, EINVALID:
		return Rejected(code, ErrorMessage(err))
	default:
		return TransientFailure(err.Error())
	}
}

// BatchSubmitter pushes records to the record store.
type BatchSubmitter interface {
	// SubmitBatch stores each record in the target collection independently.
	// The returned outcomes align with records by index; a failing record
	// never rolls back another. An error means the batch as a whole could
	// not be attempted.
	SubmitBatch(ctx context.Context, records []*ShowRecord, collection string) ([]SubmissionOutcome, error)
}
