package database

import "database/sql"

// InsertRun records a finished collection run.
func (db *DB) InsertRun(day string, titlesProcessed, reviewsFetched int) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO runs (day, titles_processed, reviews_fetched) VALUES (?, ?, ?)`,
		day, titlesProcessed, reviewsFetched,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetLastRunDay returns the most recent run day, or "" if no run has
// been recorded.
func (db *DB) GetLastRunDay() (string, error) {
	var day string
	err := db.conn.QueryRow("SELECT day FROM runs ORDER BY id DESC LIMIT 1").Scan(&day)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return day, nil
}

// GetStats returns aggregate statistics for the status command.
func (db *DB) GetStats() (*Stats, error) {
	stats := &Stats{}

	queries := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM titles", &stats.TrackedTitles},
		{"SELECT COUNT(*) FROM runs", &stats.TotalRuns},
		{"SELECT COALESCE(SUM(reviews_fetched), 0) FROM runs", &stats.ReviewsFetched},
		{"SELECT COUNT(DISTINCT day) FROM player_samples", &stats.DaysWithSamples},
	}
	for _, q := range queries {
		if err := db.conn.QueryRow(q.query).Scan(q.dest); err != nil {
			return nil, err
		}
	}
	return stats, nil
}
