package sqlite

// migrations contains the SQL migrations for the SQLite database.
var migrations = []string{
	// Migration 1: Create initial tables
	`
	-- Resolved lookups, most recent first
	CREATE TABLE IF NOT EXISTS lookups (
		id TEXT PRIMARY KEY,
		query TEXT NOT NULL,
		tag TEXT NOT NULL,
		name TEXT,
		likely_script TEXT,
		mode TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_lookups_created ON lookups(created_at);
	CREATE INDEX IF NOT EXISTS idx_lookups_tag ON lookups(tag);

	-- Schema version tracking
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	);
	INSERT OR IGNORE INTO schema_version (version) VALUES (1);
	`,
}
