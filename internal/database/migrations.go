package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the schema if it does not exist yet. The schema is
// a single table; anything fancier than idempotent DDL would be overkill.
func runMigrations(ctx context.Context, db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS selections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		brand_hex TEXT NOT NULL,
		accent_hex TEXT NOT NULL,
		token_name TEXT NOT NULL DEFAULT '',
		mode TEXT NOT NULL CHECK (mode IN ('auto', 'manual')),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_selections_brand ON selections(brand_hex);
	`

	_, err := db.ExecContext(ctx, schema)
	return err
}
