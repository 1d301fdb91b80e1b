package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the profile schema.
// These run on open to ensure the table exists.
const schema = `
CREATE TABLE IF NOT EXISTS profile_entries (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
