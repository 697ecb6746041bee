package sqlite

import (
	"errors"

	"github.com/edjs/spectacle"
	"github.com/ncruces/go-sqlite3"
)

// translateError maps SQLite failures onto application error codes.
// Errors it does not recognize are returned unchanged.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sqlite3.CONSTRAINT_UNIQUE), errors.Is(err, sqlite3.CONSTRAINT_PRIMARYKEY):
		return spectacle.Errorf(spectacle.ECONFLICT, "show already exists in collection")
	case errors.Is(err, sqlite3.CONSTRAINT):
		return spectacle.Errorf(spectacle.EINVALID, "show violates a store constraint: %v", err)
	case errors.Is(err, sqlite3.BUSY), errors.Is(err, sqlite3.LOCKED):
		return spectacle.Errorf(spectacle.EUNAVAILABLE, "database is busy: %v", err)
	}
	return err
}
