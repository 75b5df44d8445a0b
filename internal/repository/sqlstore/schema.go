package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// Works unchanged on Postgres and SQLite. event_date keeps the submitted JSON
// number text, so it is TEXT rather than a numeric column.
const schema = `
CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    fullname TEXT NOT NULL,
    description TEXT NOT NULL,
    organiser TEXT NOT NULL,
    event_date TEXT NOT NULL,
    submitted_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
)`

// EnsureSchema creates the events table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
