package catalog

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			emoji TEXT,
			color TEXT
		);

		CREATE TABLE IF NOT EXISTS playlists (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			duration TEXT,
			cover TEXT,
			category_id TEXT REFERENCES categories(id) ON DELETE SET NULL,
			section TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_playlists_section ON playlists(section);
		CREATE INDEX IF NOT EXISTS idx_playlists_category ON playlists(category_id);

		CREATE TABLE IF NOT EXISTS affirmations (
			playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
			id TEXT NOT NULL,
			position INTEGER NOT NULL,
			text TEXT NOT NULL,
			duration TEXT,
			PRIMARY KEY (playlist_id, id),
			UNIQUE (playlist_id, position)
		);

		-- Favorites and sessions outlive content reloads, so they carry no
		-- foreign key; listings join against playlists.
		CREATE TABLE IF NOT EXISTS favorites (
			playlist_id TEXT PRIMARY KEY,
			added_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			playlist_id TEXT NOT NULL,
			opened_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_sessions_opened ON sessions(opened_at);
	`)
	if err != nil {
		return err
	}

	var version int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)
	if err != nil {
		return err
	}
	if version < currentSchemaVersion {
		_, err = db.Exec(`INSERT OR REPLACE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	}
	return err
}
