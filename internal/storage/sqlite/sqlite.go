// Package sqlite provides a SQLite implementation of the storage interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/langcode/langcode/pkg/types"
	_ "modernc.org/sqlite"
)

// lookupColumns is the column list for lookup queries.
const lookupColumns = `id, query, tag, name, likely_script, mode, created_at`

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// New creates a new SQLite storage instance.
func New(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &SQLiteStorage{
		db:   db,
		path: path,
	}, nil
}

// Init initializes the database schema.
func (s *SQLiteStorage) Init(ctx context.Context) error {
	// Check current schema version
	var version int
	err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil && err != sql.ErrNoRows {
		// Table doesn't exist, run all migrations
		version = 0
	}

	// Run migrations that haven't been applied
	for i := version; i < len(migrations); i++ {
		if _, err := s.db.ExecContext(ctx, migrations[i]); err != nil {
			return fmt.Errorf("failed to run migration %d: %w", i+1, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// scanLookup scans a history entry from a SQL row.
func scanLookup(scanner interface{ Scan(...any) error }) (*types.HistoryEntry, error) {
	var entry types.HistoryEntry
	var name, likelyScript, mode sql.NullString

	err := scanner.Scan(&entry.ID, &entry.Query, &entry.Tag, &name, &likelyScript, &mode, &entry.CreatedAt)
	if err != nil {
		return nil, err
	}

	entry.Name = name.String
	entry.LikelyScript = likelyScript.String
	entry.Mode = mode.String
	return &entry, nil
}

// AddLookup records a lookup.
func (s *SQLiteStorage) AddLookup(ctx context.Context, entry *types.HistoryEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lookups (`+lookupColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Query, entry.Tag, nullString(entry.Name),
		nullString(entry.LikelyScript), nullString(entry.Mode), entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add lookup: %w", err)
	}
	return nil
}

// GetLookup retrieves a history entry by ID.
func (s *SQLiteStorage) GetLookup(ctx context.Context, id string) (*types.HistoryEntry, error) {
	entry, err := scanLookup(s.db.QueryRowContext(ctx, `
		SELECT `+lookupColumns+` FROM lookups WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lookup: %w", err)
	}
	return entry, nil
}

// GetLookupByPrefix retrieves a history entry by ID prefix.
func (s *SQLiteStorage) GetLookupByPrefix(ctx context.Context, prefix string) (*types.HistoryEntry, error) {
	entry, err := scanLookup(s.db.QueryRowContext(ctx, `
		SELECT `+lookupColumns+` FROM lookups WHERE id LIKE ? || '%' LIMIT 1
	`, prefix))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lookup by prefix: %w", err)
	}
	return entry, nil
}

// ListLookups returns history entries, most recent first. A non-positive
// limit returns everything.
func (s *SQLiteStorage) ListLookups(ctx context.Context, limit int) ([]*types.HistoryEntry, error) {
	query := `SELECT ` + lookupColumns + ` FROM lookups ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list lookups: %w", err)
	}
	defer rows.Close()

	var entries []*types.HistoryEntry
	for rows.Next() {
		entry, err := scanLookup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// DeleteLookup deletes a history entry.
func (s *SQLiteStorage) DeleteLookup(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM lookups WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lookup: %w", err)
	}
	return nil
}

// ClearLookups deletes all history entries and returns the number removed.
func (s *SQLiteStorage) ClearLookups(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM lookups`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear lookups: %w", err)
	}
	return res.RowsAffected()
}

// nullString returns a sql.NullString from a string.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
