package database

import "database/sql"

// InsertTitle adds a title to the tracked catalog. Returns false if the
// appid is already tracked.
func (db *DB) InsertTitle(appID int64, name string) (bool, error) {
	result, err := db.conn.Exec(
		`INSERT OR IGNORE INTO titles (appid, name) VALUES (?, ?)`,
		appID, name,
	)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetTitles returns all tracked titles ordered by appid.
func (db *DB) GetTitles() ([]Title, error) {
	rows, err := db.conn.Query("SELECT appid, name, added_at FROM titles ORDER BY appid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []Title
	for rows.Next() {
		var t Title
		if err := rows.Scan(&t.AppID, &t.Name, &t.AddedAt); err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}

// GetTitle returns a single tracked title, or nil if the appid is not
// tracked.
func (db *DB) GetTitle(appID int64) (*Title, error) {
	var t Title
	err := db.conn.QueryRow(
		"SELECT appid, name, added_at FROM titles WHERE appid = ?", appID,
	).Scan(&t.AppID, &t.Name, &t.AddedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTitle removes a title and its player samples from the catalog.
func (db *DB) DeleteTitle(appID int64) error {
	if _, err := db.conn.Exec("DELETE FROM player_samples WHERE appid = ?", appID); err != nil {
		return err
	}
	_, err := db.conn.Exec("DELETE FROM titles WHERE appid = ?", appID)
	return err
}
