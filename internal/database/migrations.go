package database

import "database/sql"

// Migration represents a single schema migration step.
type Migration struct {
	Version     int
	Description string
	Up          func(tx *sql.Tx) error
}

// migrations is the ordered list of all schema migrations.
// Append new migrations to the end with incrementing Version numbers.
var migrations = []Migration{
	{
		Version:     1,
		Description: "initial schema",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS titles (
    appid INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    added_at TEXT DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS player_samples (
    appid INTEGER NOT NULL REFERENCES titles(appid),
    day TEXT NOT NULL,
    player_count INTEGER NOT NULL DEFAULT 0,
    sampled_at TEXT DEFAULT (datetime('now')),
    PRIMARY KEY (appid, day)
);

CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    day TEXT NOT NULL,
    titles_processed INTEGER DEFAULT 0,
    reviews_fetched INTEGER DEFAULT 0,
    finished_at TEXT DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_runs_day ON runs(day);
`)
			return err
		},
	},
}

func latestVersion() int {
	return migrations[len(migrations)-1].Version
}
