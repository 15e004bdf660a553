// Package migrations owns the schema of the sqlite key-value store.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.sql
var files embed.FS

// Migration is a numbered pair of scripts, NNNNNN_name.up.sql and NNNNNN_name.down.sql.
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

const ledgerDDL = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	dirty BOOLEAN NOT NULL DEFAULT FALSE
)`

// Up applies every embedded migration newer than the recorded schema version.
// A version left dirty by a crashed run stops everything until someone repairs it.
func Up(ctx context.Context, db *sql.DB) error {
	all, err := Load()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}
	for _, m := range all {
		if applied[m.Version] {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
	}
	return nil
}

// Down reverts applied migrations, newest first, until only versions <= target remain.
func Down(ctx context.Context, db *sql.DB, target int) error {
	all, err := Load()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}
	for i := len(all) - 1; i >= 0; i-- {
		m := all[i]
		if m.Version <= target || !applied[m.Version] {
			continue
		}
		if err := revert(ctx, db, m); err != nil {
			return fmt.Errorf("revert %d (%s): %w", m.Version, m.Name, err)
		}
	}
	return nil
}

// Load reads the embedded scripts ordered by version.
func Load() ([]Migration, error) {
	ups, err := fs.Glob(files, "*.up.sql")
	if err != nil {
		return nil, err
	}

	var out []Migration
	for _, up := range ups {
		version, name, ok := parseFilename(up)
		if !ok {
			continue
		}
		upSQL, err := files.ReadFile(up)
		if err != nil {
			return nil, err
		}
		downSQL, err := files.ReadFile(strings.TrimSuffix(up, ".up.sql") + ".down.sql")
		if err != nil {
			return nil, fmt.Errorf("migration %d has no down script: %w", version, err)
		}
		out = append(out, Migration{Version: version, Name: name, Up: string(upSQL), Down: string(downSQL)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// parseFilename splits "000001_create_local_storage.up.sql" into 1 and "create_local_storage".
func parseFilename(file string) (int, string, bool) {
	base := strings.TrimSuffix(path.Base(file), ".up.sql")
	digits, name, found := strings.Cut(base, "_")
	if !found {
		return 0, "", false
	}
	version, err := strconv.Atoi(digits)
	if err != nil || version <= 0 {
		return 0, "", false
	}
	return version, name, true
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	if _, err := db.ExecContext(ctx, ledgerDDL); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	rows, err := db.QueryContext(ctx, "SELECT version, dirty FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := map[int]bool{}
	var dirty []int
	for rows.Next() {
		var version int
		var isDirty bool
		if err := rows.Scan(&version, &isDirty); err != nil {
			return nil, err
		}
		if isDirty {
			dirty = append(dirty, version)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(dirty) > 0 {
		sort.Ints(dirty)
		return nil, fmt.Errorf("schema is dirty at version(s) %v, repair and clear the flag before retrying", dirty)
	}
	return applied, nil
}

// apply marks the version dirty first so a crash mid-script is visible on the next start.
func apply(ctx context.Context, db *sql.DB, m Migration) error {
	if _, err := db.ExecContext(ctx, "INSERT INTO schema_migrations (version, dirty) VALUES (?, TRUE)", m.Version); err != nil {
		return err
	}
	return inTx(ctx, db, m.Up, "UPDATE schema_migrations SET dirty = FALSE WHERE version = ?", m.Version)
}

func revert(ctx context.Context, db *sql.DB, m Migration) error {
	if _, err := db.ExecContext(ctx, "UPDATE schema_migrations SET dirty = TRUE WHERE version = ?", m.Version); err != nil {
		return err
	}
	return inTx(ctx, db, m.Down, "DELETE FROM schema_migrations WHERE version = ?", m.Version)
}

func inTx(ctx context.Context, db *sql.DB, script, ledger string, version int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, script); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, ledger, version); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
