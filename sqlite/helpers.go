package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// Shows keep their timestamps as UTC RFC3339 text.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTimestamp(column, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("show %s %q: %w", column, value, err)
	}
	return t, nil
}

// writePage bounds a show listing. SQLite only accepts OFFSET after a LIMIT,
// so an offset alone is written with LIMIT -1 (no upper bound).
func writePage(query *strings.Builder, args []any, limit, offset int) []any {
	switch {
	case limit > 0:
		query.WriteString(" LIMIT ?")
		args = append(args, limit)
	case offset > 0:
		query.WriteString(" LIMIT -1")
	default:
		return args
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, offset)
	}
	return args
}
