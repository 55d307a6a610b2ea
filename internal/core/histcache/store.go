// Package histcache persists the last successfully synced audit history
// per account, so the dashboard has something to show while a fresh
// fetch is still in flight.
package histcache

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/sadopc/vericheck/internal/core/record"
)

// Store is a sqlite-backed cache keyed by account email.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the cache at the given path.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history cache: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			email    TEXT NOT NULL,
			position INTEGER NOT NULL,
			date     TEXT NOT NULL,
			kind     TEXT NOT NULL,
			snippet  TEXT,
			score    INTEGER NOT NULL,
			verdict  TEXT NOT NULL,
			PRIMARY KEY (email, position)
		);
	`)
	if err != nil {
		return fmt.Errorf("creating history table: %w", err)
	}
	return nil
}

// Replace rewrites the cached history for an email wholesale, in the
// order given. The position column preserves service ordering.
func (s *Store) Replace(email string, records []record.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting cache replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM history WHERE email = ?`, email); err != nil {
		return fmt.Errorf("clearing cached history: %w", err)
	}
	for i, r := range records {
		_, err := tx.Exec(`
			INSERT INTO history (email, position, date, kind, snippet, score, verdict)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			email, i, r.Date, string(r.Kind), r.Snippet, r.Score, r.Verdict,
		)
		if err != nil {
			return fmt.Errorf("caching history row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cache replace: %w", err)
	}
	return nil
}

// Get returns the cached history for an email in stored order. A
// missing email yields an empty slice, not an error.
func (s *Store) Get(email string) ([]record.Record, error) {
	rows, err := s.db.Query(`
		SELECT date, kind, snippet, score, verdict
		FROM history
		WHERE email = ?
		ORDER BY position`, email)
	if err != nil {
		return nil, fmt.Errorf("reading cached history: %w", err)
	}
	defer rows.Close()

	var records []record.Record
	for rows.Next() {
		var r record.Record
		var kind string
		var snippet sql.NullString
		if err := rows.Scan(&r.Date, &kind, &snippet, &r.Score, &r.Verdict); err != nil {
			return nil, fmt.Errorf("scanning cached row: %w", err)
		}
		r.Kind = record.Kind(kind)
		r.Snippet = snippet.String
		records = append(records, r)
	}
	return records, rows.Err()
}

// Clear removes every cached row for every account.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM history`)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
