package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Contribution entries reference coworkers, so coworkers must be created first.
const schema = `
CREATE TABLE IF NOT EXISTS coworkers (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    birth_month INTEGER,
    birth_day INTEGER,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS contribution_entries (
    recipient_id TEXT NOT NULL,
    year INTEGER NOT NULL,
    contributor_id TEXT NOT NULL,
    amount REAL NOT NULL,
    status TEXT NOT NULL,
    PRIMARY KEY (recipient_id, year, contributor_id),
    FOREIGN KEY (recipient_id) REFERENCES coworkers(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS payment_info (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    method TEXT NOT NULL,
    details TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS meta_admin (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    organizer_uid TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_contributor ON contribution_entries(contributor_id);
CREATE INDEX IF NOT EXISTS idx_entries_cycle ON contribution_entries(recipient_id, year);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
