// Package store handles SQLite persistence of admitted high scores.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/golangdaddy/racer/pkg/scores"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the score archive.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create data directory")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, errors.Wrap(err, "failed to migrate score archive")
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			recorded_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_scores_score ON scores(score);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Record appends an admitted entry to the archive.
func (s *Store) Record(ctx context.Context, e scores.Entry) error {
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (name, score, recorded_at) VALUES (?, ?, ?)`,
		e.Name, e.Score, at.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return errors.Wrap(err, "failed to record score")
	}
	return nil
}

// Top returns the n best entries, highest first. Ties list the most recent
// entry first, matching the board's ranking.
func (s *Store) Top(ctx context.Context, n int) ([]scores.Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, score, recorded_at FROM scores ORDER BY score DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query scores")
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []scores.Entry
	for rows.Next() {
		var (
			e  scores.Entry
			at string
		)
		if err := rows.Scan(&e.Name, &e.Score, &at); err != nil {
			return nil, errors.Wrap(err, "failed to scan score")
		}
		if e.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, errors.Wrapf(err, "bad timestamp %q", at)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read scores")
	}
	return result, nil
}

// Count returns the number of archived entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scores`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "failed to count scores")
	}
	return n, nil
}

// Restore fills board with the archive's best entries. They are loaded
// oldest rank first so the board ranks ties the same way the archive does.
func (s *Store) Restore(ctx context.Context, board *scores.Board) (int, error) {
	top, err := s.Top(ctx, board.Capacity())
	if err != nil {
		return 0, err
	}
	slices.Reverse(top)
	board.Load(top...)
	return len(top), nil
}
