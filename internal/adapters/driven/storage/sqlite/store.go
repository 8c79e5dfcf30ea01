// Package sqlite provides the SQLite-backed report store.
//
// The store keeps one row per generated report: the record itself is
// stored as a JSON blob, so the schema stays stable as analysis fields
// evolve.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Raunakgup/auto-metadata-gen/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/Raunakgup/auto-metadata-gen/internal/core/domain"
	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ReportStore = (*Store)(nil)

// Store is a SQLite-based report store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a report store at the specified data directory.
// If dataDir is empty, defaults to ~/.metagen/data/reports.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".metagen", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "reports.db")

	// WAL mode keeps the CLI responsive when serve and watch share the db
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

// migrate runs all pending migrations.
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
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
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

// Save stores a report. Reports are immutable.
func (s *Store) Save(ctx context.Context, report domain.Report) error {
	metadataJSON, err := json.Marshal(report.Metadata)
	if err != nil {
		return fmt.Errorf("marshalling metadata: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (id, filename, metadata, created_at)
		VALUES (?, ?, ?, ?)
	`, report.ID, report.Filename, string(metadataJSON), report.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// Get retrieves a report by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Report, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, filename, metadata, created_at
		FROM reports WHERE id = ?
	`, id)

	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return report, nil
}

// List returns all reports, newest first.
func (s *Store) List(ctx context.Context) ([]domain.Report, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, metadata, created_at
		FROM reports ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanReport reads one report row.
func scanReport(row scanner) (*domain.Report, error) {
	var report domain.Report
	var metadataJSON string
	var createdAt sql.NullTime

	if err := row.Scan(&report.ID, &report.Filename, &metadataJSON, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(metadataJSON), &report.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshaling metadata: %w", err)
	}
	if createdAt.Valid {
		report.CreatedAt = createdAt.Time
	}
	return &report, nil
}
