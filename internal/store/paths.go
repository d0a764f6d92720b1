package store

import (
	"path/filepath"
	"time"
)

// DayStamp returns today's date in the compact form used in batch
// file names, e.g. "20260825".
func DayStamp() string {
	return time.Now().Format("20060102")
}

// ReviewsDir returns the directory holding daily batch files.
func ReviewsDir(dataDir string) string {
	return filepath.Join(dataDir, "reviews")
}

// BatchPath returns the path of the daily batch file for a day stamp.
func BatchPath(dataDir, day string) string {
	return filepath.Join(ReviewsDir(dataDir), "reviews_recent_data_"+day+".json")
}

// StorePath returns the path of the cumulative JSONL review store.
func StorePath(dataDir string) string {
	return filepath.Join(ReviewsDir(dataDir), "combined_reviews", "all_reviews.jsonl")
}

// ExportDir returns the directory for BI-ready CSV/JSONL exports.
func ExportDir(dataDir string) string {
	return filepath.Join(ReviewsDir(dataDir), "PBI_review_ready")
}

// WatermarkPath returns the path of the per-title watermark file.
func WatermarkPath(dataDir string) string {
	return filepath.Join(dataDir, "last_timestamps.json")
}
