package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/potlib/potrec/internal/record"
)

var (
	// ErrNotFound is returned when no record matches.
	ErrNotFound = errors.New("no matching records found")

	// ErrMultiple is returned by GetOne when more than one record matches.
	ErrMultiple = errors.New("multiple matching records found")
)

// Get retrieves a single record by id. Returns ErrNotFound if absent.
func (s *Store) Get(ctx context.Context, id string) (*record.Record, error) {
	var document string
	err := s.db.QueryRowContext(ctx, `
		SELECT document FROM records WHERE id = ?
	`, id).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get record %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", id, err)
	}

	rec, err := record.LoadJSON([]byte(document))
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", id, err)
	}
	return rec, nil
}

// List returns all records matching the filter, ordered by id.
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) List(ctx context.Context, f Filter) ([]*record.Record, error) {
	where, params := compileFilter(f)
	rows, err := s.db.QueryContext(ctx, `
		SELECT document FROM records`+where+`
		ORDER BY id COLLATE BINARY ASC
	`, params...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := []*record.Record{}
	for rows.Next() {
		var document string
		if err := rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec, err := record.LoadJSON([]byte(document))
		if err != nil {
			return nil, fmt.Errorf("parse record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

// GetOne returns the single record matching the filter.
// Returns ErrNotFound for no match and ErrMultiple for more than one.
func (s *Store) GetOne(ctx context.Context, f Filter) (*record.Record, error) {
	records, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}
	switch len(records) {
	case 1:
		return records[0], nil
	case 0:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("%w: %d", ErrMultiple, len(records))
	}
}

// IDs returns the ids of all records matching the filter, ordered.
func (s *Store) IDs(ctx context.Context, f Filter) ([]string, error) {
	where, params := compileFilter(f)
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM records`+where+`
		ORDER BY id COLLATE BINARY ASC
	`, params...)
	if err != nil {
		return nil, fmt.Errorf("list record ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan record id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate record ids: %w", err)
	}

	return ids, nil
}

// Digest returns the stored content digest for a record id.
func (s *Store) Digest(ctx context.Context, id string) (string, error) {
	var digest string
	err := s.db.QueryRowContext(ctx, `
		SELECT digest FROM records WHERE id = ?
	`, id).Scan(&digest)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("digest of record %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("digest of record %s: %w", id, err)
	}
	return digest, nil
}
