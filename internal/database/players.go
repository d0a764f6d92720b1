package database

// InsertPlayerSample records a player-count poll for a title and day.
// Re-polling the same day overwrites the earlier sample.
func (db *DB) InsertPlayerSample(appID int64, day string, playerCount int) error {
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO player_samples (appid, day, player_count) VALUES (?, ?, ?)`,
		appID, day, playerCount,
	)
	return err
}

// GetPlayerSamples returns all samples for a day ordered by appid.
func (db *DB) GetPlayerSamples(day string) ([]PlayerSample, error) {
	rows, err := db.conn.Query(
		"SELECT appid, day, player_count, sampled_at FROM player_samples WHERE day = ? ORDER BY appid",
		day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []PlayerSample
	for rows.Next() {
		var s PlayerSample
		if err := rows.Scan(&s.AppID, &s.Day, &s.PlayerCount, &s.SampledAt); err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}
