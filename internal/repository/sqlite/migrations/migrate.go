// Package migrations creates and evolves the task store schema from embedded SQL files.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

//go:embed *.sql
var migrationsFS embed.FS

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"
)

// Migration is one numbered schema change with the SQL to apply and revert it
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// RunMigrations applies every embedded migration not yet recorded in the migrations table.
// Each migration and its bookkeeping row commit together, so a failed step leaves no trace.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	all, err := LoadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	return apply(ctx, db, all)
}

func apply(ctx context.Context, db *sql.DB, all []Migration) error {
	if err := ensureMigrationsTable(ctx, db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := AppliedVersions(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, m := range all {
		if slices.Contains(applied, m.Version) {
			continue
		}
		if err := inTx(ctx, db, m.Up, "INSERT INTO migrations (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		zerolog.Ctx(ctx).Debug().Int("version", m.Version).Str("name", m.Name).Msg("migration applied")
	}
	return nil
}

// Rollback reverts the most recent steps applied migrations, newest first
func Rollback(ctx context.Context, db *sql.DB, steps int) error {
	all, err := LoadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	applied, err := AppliedVersions(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for i := len(applied) - 1; i >= 0 && steps > 0; i, steps = i-1, steps-1 {
		idx := slices.IndexFunc(all, func(m Migration) bool { return m.Version == applied[i] })
		if idx < 0 {
			return fmt.Errorf("no migration file for applied version %d", applied[i])
		}
		m := all[idx]
		if err := inTx(ctx, db, m.Down, "DELETE FROM migrations WHERE version = ?", m.Version); err != nil {
			return fmt.Errorf("failed to revert migration %d (%s): %w", m.Version, m.Name, err)
		}
		zerolog.Ctx(ctx).Debug().Int("version", m.Version).Str("name", m.Name).Msg("migration reverted")
	}
	return nil
}

// AppliedVersions returns the versions recorded in the migrations table, ascending
func AppliedVersions(ctx context.Context, db *sql.DB) ([]int, error) {
	if err := ensureMigrationsTable(ctx, db); err != nil {
		return nil, err
	}
	return queryVersions(ctx, db, "SELECT version FROM migrations ORDER BY version")
}

// LoadMigrations reads the embedded NNNNNN_name.up.sql / .down.sql pairs ordered by version
func LoadMigrations() ([]Migration, error) {
	ups, err := fs.Glob(migrationsFS, "*"+upSuffix)
	if err != nil {
		return nil, err
	}

	var loaded []Migration
	for _, file := range ups {
		version := extractVersion(file)
		if version == 0 {
			continue
		}

		up, err := migrationsFS.ReadFile(file)
		if err != nil {
			return nil, err
		}
		down, err := migrationsFS.ReadFile(strings.TrimSuffix(file, upSuffix) + downSuffix)
		if err != nil {
			return nil, fmt.Errorf("migration %d has no down file: %w", version, err)
		}

		loaded = append(loaded, Migration{
			Version: version,
			Name:    extractName(file),
			Up:      string(up),
			Down:    string(down),
		})
	}

	slices.SortFunc(loaded, func(a, b Migration) int { return a.Version - b.Version })
	return loaded, nil
}

func ensureMigrationsTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`)
	return err
}

func queryVersions(ctx context.Context, db *sql.DB, query string) ([]int, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	versions := []int{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// inTx runs the schema script and the bookkeeping statement atomically
func inTx(ctx context.Context, db *sql.DB, script, bookkeeping string, version int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, script); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, bookkeeping, version); err != nil {
		return err
	}
	return tx.Commit()
}

func extractVersion(filename string) int {
	prefix, _, ok := strings.Cut(filename, "_")
	if !ok {
		return 0
	}
	version, err := strconv.Atoi(prefix)
	if err != nil || version < 0 {
		return 0
	}
	return version
}

func extractName(filename string) string {
	name := strings.TrimSuffix(filename, upSuffix)
	if _, rest, ok := strings.Cut(name, "_"); ok {
		return rest
	}
	return name
}
