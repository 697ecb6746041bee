package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/edjs/spectacle"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ spectacle.ShowService = (*ShowService)(nil)

// ShowService implements spectacle.ShowService using SQLite.
type ShowService struct {
	db *DB
}

// NewShowService creates a new ShowService.
func NewShowService(db *DB) *ShowService {
	return &ShowService{db: db}
}

const showColumns = `id, collection, slug, display_name, source_path, title, description, synopsis,
	duration, age_range, price, venue, dates, category, language, images, gallery, cast_members,
	technical_info, status, source_hash, created_at, updated_at`

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// hashShow hashes the extracted content of a show, ignoring storage
// metadata, so unchanged re-extractions hash identically.
func hashShow(show *spectacle.ShowRecord) (string, error) {
	c := *show
	c.ID, c.Collection, c.Status, c.SourceHash = "", "", "", ""
	c.CreatedAt, c.UpdatedAt = time.Time{}, time.Time{}
	b, err := json.Marshal(&c)
	if err != nil {
		return "", err
	}
	return hashContent(string(b)), nil
}

// CreateShow creates a new show in show.Collection.
func (s *ShowService) CreateShow(ctx context.Context, show *spectacle.ShowRecord) error {
	if show.Collection == "" {
		return spectacle.Errorf(spectacle.EINVALID, "show collection required")
	}
	if show.Slug == "" {
		show.Slug = spectacle.ShowSlug(show.Title, show.SourcePath)
	}
	if show.Status == "" {
		show.Status = spectacle.StatusDraft
	}
	if err := show.Validate(); err != nil {
		return err
	}

	hash, err := hashShow(show)
	if err != nil {
		return fmt.Errorf("hash show: %w", err)
	}
	images, gallery, cast, err := encodeLists(show)
	if err != nil {
		return err
	}

	id := uuid.New().String()
	now := time.Now().UTC()
	ageMin, ageMax := show.AgeBounds()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO shows (`+showColumns+`, age_range_min, age_range_max)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, show.Collection, show.Slug, show.DisplayName, show.SourcePath, show.Title, show.Description,
		show.Synopsis, show.Duration, show.AgeRange, show.Price, show.Venue, show.Dates,
		string(show.Category), string(show.Language), images, gallery, cast, show.TechnicalInfo,
		string(show.Status), hash, formatTimestamp(now), formatTimestamp(now), ageMin, ageMax)
	if err != nil {
		return translateError(err)
	}

	show.ID = id
	show.SourceHash = hash
	show.CreatedAt = now
	show.UpdatedAt = now
	return nil
}

// FindShowByID retrieves a show by ID.
func (s *ShowService) FindShowByID(ctx context.Context, id string) (*spectacle.ShowRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+showColumns+` FROM shows WHERE id = ?`, id)

	show, err := scanShow(row)
	if err == sql.ErrNoRows {
		return nil, spectacle.Errorf(spectacle.ENOTFOUND, "show not found")
	}
	if err != nil {
		return nil, err
	}
	return show, nil
}

// FindShows retrieves shows matching the filter, oldest first.
func (s *ShowService) FindShows(ctx context.Context, filter spectacle.ShowFilter) ([]*spectacle.ShowRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + showColumns + " FROM shows WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Collection != nil {
		query.WriteString(" AND collection = ?")
		args = append(args, *filter.Collection)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY created_at ASC, rowid ASC")
	args = writePage(&query, args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shows []*spectacle.ShowRecord
	for rows.Next() {
		show, err := scanShow(rows)
		if err != nil {
			return nil, err
		}
		shows = append(shows, show)
	}

	return shows, rows.Err()
}

// UpdateShow updates an existing show.
func (s *ShowService) UpdateShow(ctx context.Context, id string, upd spectacle.ShowUpdate) (*spectacle.ShowRecord, error) {
	show, err := s.FindShowByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		show.Title = *upd.Title
	}
	if upd.Description != nil {
		show.Description = *upd.Description
	}
	if upd.Synopsis != nil {
		show.Synopsis = *upd.Synopsis
	}
	if upd.Duration != nil {
		show.Duration = *upd.Duration
	}
	if upd.Price != nil {
		show.Price = *upd.Price
	}
	if upd.Status != nil {
		show.Status = *upd.Status
	}

	if err := show.Validate(); err != nil {
		return nil, err
	}

	hash, err := hashShow(show)
	if err != nil {
		return nil, fmt.Errorf("hash show: %w", err)
	}
	show.SourceHash = hash
	show.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE shows
		SET title = ?, description = ?, synopsis = ?, duration = ?, price = ?, status = ?,
			source_hash = ?, updated_at = ?
		WHERE id = ?
	`, show.Title, show.Description, show.Synopsis, show.Duration, show.Price, string(show.Status),
		show.SourceHash, formatTimestamp(show.UpdatedAt), id)
	if err != nil {
		return nil, translateError(err)
	}

	return show, nil
}

// DeleteShow permanently removes a show.
func (s *ShowService) DeleteShow(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM shows WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return spectacle.Errorf(spectacle.ENOTFOUND, "show not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanShow(row scanner) (*spectacle.ShowRecord, error) {
	var (
		show                  spectacle.ShowRecord
		category, language    string
		status                string
		images, gallery, cast string
		createdAt, updatedAt  string
	)

	if err := row.Scan(&show.ID, &show.Collection, &show.Slug, &show.DisplayName, &show.SourcePath,
		&show.Title, &show.Description, &show.Synopsis, &show.Duration, &show.AgeRange, &show.Price,
		&show.Venue, &show.Dates, &category, &language, &images, &gallery, &cast,
		&show.TechnicalInfo, &status, &show.SourceHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	show.Category = spectacle.Category(category)
	show.Language = spectacle.Language(language)
	show.Status = spectacle.Status(status)

	if err := decodeList(images, &show.Images, "images"); err != nil {
		return nil, err
	}
	if err := decodeList(gallery, &show.Gallery, "gallery"); err != nil {
		return nil, err
	}
	if err := decodeList(cast, &show.Cast, "cast_members"); err != nil {
		return nil, err
	}

	var err error
	if show.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	if show.UpdatedAt, err = parseTimestamp("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &show, nil
}

func encodeLists(show *spectacle.ShowRecord) (images, gallery, cast string, err error) {
	if images, err = encodeList(show.Images); err != nil {
		return "", "", "", err
	}
	if gallery, err = encodeList(show.Gallery); err != nil {
		return "", "", "", err
	}
	if cast, err = encodeList(show.Cast); err != nil {
		return "", "", "", err
	}
	return images, gallery, cast, nil
}

func encodeList(l []string) (string, error) {
	if l == nil {
		l = []string{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("encode show list: %w", err)
	}
	return string(b), nil
}

func decodeList(value string, dst *[]string, fieldName string) error {
	if err := json.Unmarshal([]byte(value), dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	if *dst == nil {
		*dst = []string{}
	}
	return nil
}
