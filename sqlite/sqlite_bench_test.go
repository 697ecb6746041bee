package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/edjs/spectacle"
	"github.com/edjs/spectacle/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkSubmitBatch measures importing a full catalog into a file-based
// database.
func BenchmarkSubmitBatch(b *testing.B) {
	const showsPerBatch = 100

	records := make([]*spectacle.ShowRecord, showsPerBatch)
	for i := range records {
		records[i] = newShow(fmt.Sprintf("Spectacle %d", i))
	}

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		db := sqlite.NewDB(filepath.Join(b.TempDir(), fmt.Sprintf("bench%d.db", i)))
		require.NoError(b, db.Open())
		submitter := sqlite.NewSubmitter(sqlite.NewShowService(db))
		b.StartTimer()

		outcomes, err := submitter.SubmitBatch(context.Background(), records, "spectacles")
		if err != nil {
			b.Fatal(err)
		}
		for _, o := range outcomes {
			if o.Kind != spectacle.OutcomeStored {
				b.Fatalf("unexpected outcome: %+v", o)
			}
		}

		b.StopTimer()
		db.Close()
	}
}
