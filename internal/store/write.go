package store

import (
	"context"
	"fmt"

	"github.com/potlib/potrec/internal/model"
	"github.com/potlib/potrec/internal/record"
)

// Save upserts a record by its id. The record's document form, content
// digest, and particle-model index rows are written atomically; saving the
// same record twice is a no-op, saving a changed record replaces it.
func (s *Store) Save(ctx context.Context, rec *record.Record) error {
	if rec.ID == "" {
		return fmt.Errorf("save record: record id must be set")
	}

	doc, err := rec.BuildModel()
	if err != nil {
		return fmt.Errorf("save record %s: %w", rec.ID, err)
	}
	docJSON, err := model.Marshal(doc)
	if err != nil {
		return fmt.Errorf("save record %s: %w", rec.ID, err)
	}
	digest, err := model.Digest(model.DomainRecord, doc)
	if err != nil {
		return fmt.Errorf("save record %s: %w", rec.ID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save record %s: begin tx: %w", rec.ID, err)
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO records
		(id, key, pot_id, pot_key, pair_style, status, digest, document)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			key = excluded.key,
			pot_id = excluded.pot_id,
			pot_key = excluded.pot_key,
			pair_style = excluded.pair_style,
			status = excluded.status,
			digest = excluded.digest,
			document = excluded.document
	`,
		rec.ID,
		rec.Key,
		rec.PotID,
		rec.PotKey,
		rec.PairStyle,
		rec.Status,
		digest,
		string(docJSON),
	)
	if err != nil {
		return fmt.Errorf("save record %s: %w", rec.ID, err)
	}

	// Rebuild the model index rows for this record.
	if _, err := tx.ExecContext(ctx, `DELETE FROM record_models WHERE record_id = ?`, rec.ID); err != nil {
		return fmt.Errorf("save record %s: clear models: %w", rec.ID, err)
	}
	symbols := rec.Symbols()
	for i, a := range rec.Atoms {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO record_models (record_id, symbol, element)
			VALUES (?, ?, ?)
			ON CONFLICT(record_id, symbol) DO NOTHING
		`, rec.ID, symbols[i], a.Element)
		if err != nil {
			return fmt.Errorf("save record %s: model %s: %w", rec.ID, symbols[i], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save record %s: commit: %w", rec.ID, err)
	}
	return nil
}

// Delete removes a record by id. Deleting an absent id returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete record %s: rows affected: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete record %s: %w", id, ErrNotFound)
	}
	return nil
}
