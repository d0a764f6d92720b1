package database

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInsertTitle(t *testing.T) {
	db := openTestDB(t)
	added, err := db.InsertTitle(570, "Dota 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !added {
		t.Error("expected title to be added")
	}
}

func TestInsertDuplicateTitle(t *testing.T) {
	db := openTestDB(t)
	db.InsertTitle(570, "Dota 2")
	added, err := db.InsertTitle(570, "Dota 2 again")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added {
		t.Error("expected duplicate appid to be ignored")
	}
}

func TestGetTitlesOrdered(t *testing.T) {
	db := openTestDB(t)
	db.InsertTitle(730, "Counter-Strike 2")
	db.InsertTitle(570, "Dota 2")

	titles, err := db.GetTitles()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(titles) != 2 {
		t.Fatalf("expected 2 titles, got %d", len(titles))
	}
	if titles[0].AppID != 570 || titles[1].AppID != 730 {
		t.Errorf("expected titles ordered by appid, got %d, %d", titles[0].AppID, titles[1].AppID)
	}
}

func TestTitleLifecycle(t *testing.T) {
	db := openTestDB(t)
	db.InsertTitle(570, "Dota 2")

	title, err := db.GetTitle(570)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title == nil {
		t.Fatal("expected title")
	}
	if title.Name != "Dota 2" {
		t.Errorf("expected name 'Dota 2', got %q", title.Name)
	}

	if err := db.DeleteTitle(570); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	title, _ = db.GetTitle(570)
	if title != nil {
		t.Error("expected nil after delete")
	}
}

func TestPlayerSamples(t *testing.T) {
	db := openTestDB(t)
	db.InsertTitle(570, "Dota 2")

	if err := db.InsertPlayerSample(570, "20260825", 400000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Re-polling the same day replaces the sample.
	if err := db.InsertPlayerSample(570, "20260825", 410000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	samples, err := db.GetPlayerSamples("20260825")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
	if samples[0].PlayerCount != 410000 {
		t.Errorf("expected latest count 410000, got %d", samples[0].PlayerCount)
	}
}

func TestRunsAndLastRunDay(t *testing.T) {
	db := openTestDB(t)

	last, err := db.GetLastRunDay()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last != "" {
		t.Errorf("expected empty string, got %q", last)
	}

	db.InsertRun("20260824", 3, 150)
	db.InsertRun("20260825", 3, 12)

	last, _ = db.GetLastRunDay()
	if last != "20260825" {
		t.Errorf("expected '20260825', got %q", last)
	}
}

func TestGetStats(t *testing.T) {
	db := openTestDB(t)
	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TrackedTitles != 0 {
		t.Errorf("expected 0 titles, got %d", stats.TrackedTitles)
	}

	db.InsertTitle(570, "Dota 2")
	db.InsertPlayerSample(570, "20260825", 400000)
	db.InsertRun("20260825", 1, 42)

	stats, _ = db.GetStats()
	if stats.TrackedTitles != 1 {
		t.Errorf("expected 1 title, got %d", stats.TrackedTitles)
	}
	if stats.TotalRuns != 1 {
		t.Errorf("expected 1 run, got %d", stats.TotalRuns)
	}
	if stats.ReviewsFetched != 42 {
		t.Errorf("expected 42 reviews fetched, got %d", stats.ReviewsFetched)
	}
	if stats.DaysWithSamples != 1 {
		t.Errorf("expected 1 sampled day, got %d", stats.DaysWithSamples)
	}
}
