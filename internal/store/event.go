package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

// sequencer stamps diagnostics rows with a strictly increasing sequence.
// The counter bump and the row insert share one transaction, so a failed
// insert does not leave a gap.
type sequencer struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequencer(ctx context.Context, db *sql.DB) (*sequencer, error) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS global_sequence (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			next_val INTEGER NOT NULL DEFAULT 1
		)`,
		`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("prepare sequence table: %w", err)
		}
	}
	return &sequencer{db: db}, nil
}

// append reserves the next sequence number and hands it to insert inside a
// transaction. The number is only spent when insert succeeds.
func (s *sequencer) append(ctx context.Context, insert func(tx *sql.Tx, seq int64) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	var seq int64
	if err = tx.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq); err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if err = insert(tx, seq); err != nil {
		return err
	}
	return tx.Commit()
}
