package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS picker_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			query TEXT NOT NULL DEFAULT '',
			selected_command TEXT
		);

		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			command TEXT NOT NULL,
			args TEXT NOT NULL DEFAULT '',
			invoked_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_history_invoked_at ON history(invoked_at DESC);
		CREATE INDEX IF NOT EXISTS idx_history_command_args ON history(command, args);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
