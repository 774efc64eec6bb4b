package state

import (
	"database/sql"
)

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS ui_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			tab TEXT NOT NULL,
			explore_filter TEXT,
			notifications INTEGER NOT NULL DEFAULT 1,
			icon_style TEXT
		);
	`)
	return err
}
