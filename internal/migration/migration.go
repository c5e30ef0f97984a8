// Package migration applies the embedded, numbered SQL scripts of a
// storage backend and records each applied script in schema_migrations.
package migration

import (
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/fitfinder/internal/logger"
)

// Migration is one NNN_name.sql script.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Applied is a row of the schema_migrations history.
type Applied struct {
	Version   int
	Name      string
	AppliedAt time.Time
}

// Dialect selects the bind parameter syntax of the target database.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

func (d Dialect) insertApplied() string {
	if d == Postgres {
		return "INSERT INTO schema_migrations (version, name, applied_at) VALUES ($1, $2, $3)"
	}
	return "INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)"
}

type Runner struct {
	db      *sql.DB
	fs      fs.FS
	dialect Dialect
	now     func() time.Time
}

func NewRunner(db *sql.DB, migrationFS fs.FS, dialect Dialect) *Runner {
	return &Runner{
		db:      db,
		fs:      migrationFS,
		dialect: dialect,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *Runner) ensureTable() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}
	return nil
}

// CurrentVersion is the highest applied version; 0 for a fresh database.
func (r *Runner) CurrentVersion() (int, error) {
	if err := r.ensureTable(); err != nil {
		return 0, err
	}
	var version int
	if err := r.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get current version: %w", err)
	}
	return version, nil
}

// History lists applied migrations in version order.
func (r *Runner) History() ([]Applied, error) {
	if err := r.ensureTable(); err != nil {
		return nil, err
	}
	rows, err := r.db.Query("SELECT version, name, applied_at FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration history: %w", err)
	}
	defer rows.Close()

	var history []Applied
	for rows.Next() {
		var a Applied
		var at string
		if err := rows.Scan(&a.Version, &a.Name, &at); err != nil {
			return nil, err
		}
		if a.AppliedAt, err = time.Parse(time.RFC3339, at); err != nil {
			logger.Warn("Unreadable migration timestamp", "version", a.Version, "value", at)
		}
		history = append(history, a)
	}
	return history, rows.Err()
}

// Available parses the NNN_name.sql files of the runner's filesystem,
// sorted by version.
func (r *Runner) Available() ([]Migration, error) {
	files, err := fs.ReadDir(r.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var migrations []Migration
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		prefix, rest, ok := strings.Cut(file.Name(), "_")
		if !ok {
			return nil, fmt.Errorf("invalid migration filename format: %s (expected NNN_name.sql)", file.Name())
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("invalid version number in filename %s: %w", file.Name(), err)
		}
		if version < 1 {
			return nil, fmt.Errorf("invalid version number in filename %s: version must be at least 1", file.Name())
		}

		content, err := fs.ReadFile(r.fs, file.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", file.Name(), err)
		}
		migrations = append(migrations, Migration{
			Version: version,
			Name:    strings.TrimSuffix(rest, ".sql"),
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version == migrations[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", migrations[i].Version)
		}
	}
	return migrations, nil
}

func (r *Runner) LatestVersion() (int, error) {
	migrations, err := r.Available()
	if err != nil || len(migrations) == 0 {
		return 0, err
	}
	return migrations[len(migrations)-1].Version, nil
}

// Pending returns the scripts newer than the current version. A database
// migrated by a newer build is an error.
func (r *Runner) Pending() ([]Migration, error) {
	current, err := r.CurrentVersion()
	if err != nil {
		return nil, err
	}
	migrations, err := r.Available()
	if err != nil {
		return nil, err
	}
	if len(migrations) > 0 && current > migrations[len(migrations)-1].Version {
		return nil, newerSchemaError(current, migrations[len(migrations)-1].Version)
	}

	var pending []Migration
	for _, m := range migrations {
		if m.Version > current {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

// Apply runs every pending migration in its own transaction and returns
// how many were applied. progress may be nil.
func (r *Runner) Apply(progress func(string)) (int, error) {
	if progress == nil {
		progress = func(string) {}
	}

	pending, err := r.Pending()
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		current, _ := r.CurrentVersion()
		progress(fmt.Sprintf("Database schema is up to date (version %d)", current))
		return 0, nil
	}

	progress(fmt.Sprintf("Applying %d migration(s)...", len(pending)))
	start := time.Now()
	for i, m := range pending {
		progress(fmt.Sprintf("  %03d_%s", m.Version, m.Name))
		if err := r.apply(m); err != nil {
			logger.Error("Migration failed", "version", m.Version, "name", m.Name, "error", err)
			return i, err
		}
	}
	progress(fmt.Sprintf("Applied %d migration(s) in %v", len(pending), time.Since(start).Round(time.Millisecond)))
	logger.Info("Applied migrations", "count", len(pending), "version", pending[len(pending)-1].Version)
	return len(pending), nil
}

func (r *Runner) apply(m Migration) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for migration %d: %w", m.Version, err)
	}
	if _, err := tx.Exec(m.SQL); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
	}
	if _, err := tx.Exec(r.dialect.insertApplied(), m.Version, m.Name, r.now().Format(time.RFC3339)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}
	return nil
}

// Validate fails when the database was migrated by a newer build.
func (r *Runner) Validate() error {
	_, err := r.Pending()
	return err
}

func newerSchemaError(current, latest int) error {
	return fmt.Errorf("database schema version (%d) is newer than supported version (%d), upgrade fitfinder", current, latest)
}
