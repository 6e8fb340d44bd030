// Package sqlstore implements fields.Store on top of a SQLite database, the
// same layout a CMS uses for per-item metadata rows.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite"

	"github.com/goliatone/go-faqschema/pkg/fields"
)

const schema = `CREATE TABLE IF NOT EXISTS item_fields (
	item_id INTEGER NOT NULL,
	name    TEXT    NOT NULL,
	value   TEXT    NOT NULL,
	PRIMARY KEY (item_id, name)
)`

// Store reads item fields from SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Ensure Store implements the fields.Store interface.
var _ fields.Store = (*Store)(nil)

// Open connects to (or creates) the database at path and applies the schema.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlstore: database path is required")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlstore: ensure directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open sqlite db: %w", err)
	}
	// A second connection to ":memory:" would see a different database.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlstore: apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlstore: apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Field implements fields.Store. Values are stored as text, so the returned
// value is always a string.
func (s *Store) Field(ctx context.Context, name string, id int64) (any, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("sqlstore: store is not open")
	}

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM item_fields WHERE item_id = ? AND name = ?`, id, name,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sqlstore: item %d field %q: %w", id, name, fields.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlstore: query item %d field %q: %w", id, name, err)
	}
	return value, nil
}

// Put writes a single field value, replacing an existing one.
func (s *Store) Put(ctx context.Context, id int64, name, value string) error {
	if s == nil || s.db == nil {
		return errors.New("sqlstore: store is not open")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO item_fields (item_id, name, value) VALUES (?, ?, ?)
		 ON CONFLICT(item_id, name) DO UPDATE SET value = excluded.value`,
		id, name, value,
	)
	if err != nil {
		return fmt.Errorf("sqlstore: put item %d field %q: %w", id, name, err)
	}
	return nil
}

// Import writes every text-coercible value from values inside a single
// transaction. Values that are not text are skipped and reported by name.
func (s *Store) Import(ctx context.Context, values map[int64]map[string]any) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("sqlstore: store is not open")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO item_fields (item_id, name, value) VALUES (?, ?, ?)
		 ON CONFLICT(item_id, name) DO UPDATE SET value = excluded.value`)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: prepare import: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var skipped []string
	for _, id := range ids {
		names := make([]string, 0, len(values[id]))
		for name := range values[id] {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			text, ok := fields.Text(values[id][name])
			if !ok {
				skipped = append(skipped, fmt.Sprintf("%d.%s", id, name))
				continue
			}
			if _, err := stmt.ExecContext(ctx, id, name, text); err != nil {
				return nil, fmt.Errorf("sqlstore: import item %d field %q: %w", id, name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("sqlstore: commit import: %w", err)
	}
	return skipped, nil
}
