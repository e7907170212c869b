// Package migrations manages the database schema.
//
// Migrations are ordered, idempotent, and tracked in a migrations table so
// that each one runs exactly once per database.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/spendtrack/backend/internal/database"
)

// Migration represents a single schema change
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Migrator applies pending migrations to the database
type Migrator struct {
	db *database.Pool
}

// NewMigrator creates a new Migrator
func NewMigrator(db *database.Pool) *Migrator {
	return &Migrator{db: db}
}

// Run applies all pending migrations in order. Each migration runs in its
// own transaction together with its tracking record.
func (m *Migrator) Run(ctx context.Context) error {
	if err := m.ensureMigrationsTable(ctx); err != nil {
		return err
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return err
	}

	for _, migration := range All() {
		if applied[migration.Version] {
			continue
		}

		start := time.Now()
		err := m.db.Transaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, migration.SQL); err != nil {
				return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
			}
			_, err := tx.ExecContext(
				ctx,
				"INSERT INTO migrations (version, name, applied_at) VALUES ($1, $2, $3)",
				migration.Version,
				migration.Name,
				time.Now(),
			)
			return err
		})
		if err != nil {
			return err
		}

		log.Info().
			Int("version", migration.Version).
			Str("name", migration.Name).
			Dur("duration", time.Since(start)).
			Msg("Applied migration")
	}

	return nil
}

// ensureMigrationsTable creates the tracking table if it does not exist
func (m *Migrator) ensureMigrationsTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := m.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// appliedVersions returns the set of already applied migration versions
func (m *Migrator) appliedVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := m.db.QueryContext(ctx, "SELECT version FROM migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
