package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/clearline-health/eligo/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/clearline-health/eligo/internal/core/domain"
	"github.com/clearline-health/eligo/internal/core/ports/driven"
)

var _ driven.HistoryStore = (*Store)(nil)

// Store is a SQLite-backed lookup history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a history store at the specified data directory.
// If dataDir is empty, defaults to ~/.eligo/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".eligo", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies pending .up.sql migrations in version order.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue // already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Record appends one lookup record.
func (s *Store) Record(ctx context.Context, rec domain.LookupRecord) error {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lookup_history (id, operation, member_id, transaction_id, status_code, ok, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Operation, rec.MemberID, rec.TransactionID, rec.StatusCode, rec.OK, createdAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting lookup record: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first. A non-positive limit
// returns all records.
func (s *Store) List(ctx context.Context, limit int) ([]domain.LookupRecord, error) {
	query := `
		SELECT id, operation, member_id, transaction_id, status_code, ok, created_at
		FROM lookup_history
		ORDER BY created_at DESC, rowid DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying lookup history: %w", err)
	}
	defer rows.Close()

	var records []domain.LookupRecord
	for rows.Next() {
		var rec domain.LookupRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Operation, &rec.MemberID, &rec.TransactionID, &rec.StatusCode, &rec.OK, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning lookup record: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = ts
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lookup records: %w", err)
	}
	return records, nil
}

// Clear removes all records.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM lookup_history"); err != nil {
		return fmt.Errorf("clearing lookup history: %w", err)
	}
	return nil
}
