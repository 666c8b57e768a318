package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Migration is one idempotent schema step.
type Migration struct {
	Name string
	Up   string
}

var postgresMigrations = []Migration{
	{
		Name: "create_certificates",
		Up: `CREATE TABLE IF NOT EXISTS certificates (
			seq         BIGSERIAL PRIMARY KEY,
			id          TEXT NOT NULL UNIQUE,
			title       TEXT NOT NULL CHECK (btrim(title) <> ''),
			issuer      TEXT NOT NULL CHECK (btrim(issuer) <> ''),
			issued_at   TIMESTAMPTZ NOT NULL,
			description TEXT
		)`,
	},
	{
		Name: "create_certificates_issued_at_idx",
		Up:   `CREATE INDEX IF NOT EXISTS certificates_issued_at_idx ON certificates (issued_at DESC, seq ASC)`,
	},
	{
		Name: "create_experiences",
		Up: `CREATE TABLE IF NOT EXISTS experiences (
			seq         BIGSERIAL PRIMARY KEY,
			id          TEXT NOT NULL UNIQUE,
			position    TEXT NOT NULL CHECK (btrim(position) <> ''),
			company     TEXT NOT NULL CHECK (btrim(company) <> ''),
			start_date  TIMESTAMPTZ NOT NULL,
			end_date    TIMESTAMPTZ,
			description TEXT,
			CONSTRAINT valid_date_range CHECK (end_date IS NULL OR end_date >= start_date)
		)`,
	},
	{
		Name: "create_experiences_start_date_idx",
		Up:   `CREATE INDEX IF NOT EXISTS experiences_start_date_idx ON experiences (start_date DESC, seq ASC)`,
	},
}

var sqliteMigrations = []Migration{
	{
		Name: "create_certificates",
		Up: `CREATE TABLE IF NOT EXISTS certificates (
			seq         INTEGER PRIMARY KEY AUTOINCREMENT,
			id          TEXT NOT NULL UNIQUE,
			title       TEXT NOT NULL CHECK (trim(title) <> ''),
			issuer      TEXT NOT NULL CHECK (trim(issuer) <> ''),
			issued_at   DATETIME NOT NULL,
			description TEXT
		)`,
	},
	{
		Name: "create_certificates_issued_at_idx",
		Up:   `CREATE INDEX IF NOT EXISTS certificates_issued_at_idx ON certificates (issued_at DESC, seq ASC)`,
	},
	{
		Name: "create_experiences",
		Up: `CREATE TABLE IF NOT EXISTS experiences (
			seq         INTEGER PRIMARY KEY AUTOINCREMENT,
			id          TEXT NOT NULL UNIQUE,
			position    TEXT NOT NULL CHECK (trim(position) <> ''),
			company     TEXT NOT NULL CHECK (trim(company) <> ''),
			start_date  DATETIME NOT NULL,
			end_date    DATETIME,
			description TEXT
		)`,
	},
	{
		Name: "create_experiences_start_date_idx",
		Up:   `CREATE INDEX IF NOT EXISTS experiences_start_date_idx ON experiences (start_date DESC, seq ASC)`,
	},
}

// Migrate runs the schema steps for the driver behind db, in order.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var migrations []Migration
	switch db.DriverName() {
	case "postgres":
		migrations = postgresMigrations
	case "sqlite":
		migrations = sqliteMigrations
	default:
		return fmt.Errorf("migrate: unsupported driver %q", db.DriverName())
	}

	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m.Up); err != nil {
			log.Error().Err(err).Str("name", m.Name).Msg("Migration failed")
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		log.Debug().Str("name", m.Name).Msg("Migration applied")
	}

	log.Info().Int("count", len(migrations)).Msg("Migrations completed")
	return nil
}

// MigrateStore runs SQL migrations when the store is SQL backed.
// Mongo collections need no schema.
func MigrateStore(ctx context.Context, s *Store) error {
	if s == nil || s.SQL == nil {
		return nil
	}
	return Migrate(ctx, s.SQL)
}
