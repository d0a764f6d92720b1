package store

import (
	"os"
	"path/filepath"
	"testing"
)

func makeReviews(n int, baseTS int64) []Review {
	reviews := make([]Review, n)
	for i := range reviews {
		reviews[i] = Review{
			RecommendationID: "r" + string(rune('a'+i)),
			Text:             "some review text",
			TimestampCreated: baseTS + int64(i),
		}
	}
	return reviews
}

func TestConsolidateIntoEmptyStore(t *testing.T) {
	batches := []TitleReviews{{AppID: 10, Reviews: makeReviews(3, 100)}}

	merged := Consolidate(nil, batches)
	if len(merged) != 1 {
		t.Fatalf("expected 1 title, got %d", len(merged))
	}
	if merged[0].AppID != 10 {
		t.Errorf("expected appid 10, got %d", merged[0].AppID)
	}
	if len(merged[0].Reviews) != 3 {
		t.Errorf("expected 3 reviews, got %d", len(merged[0].Reviews))
	}
}

func TestConsolidateSameBatchTwiceDoubles(t *testing.T) {
	batch := []TitleReviews{{AppID: 10, Reviews: makeReviews(4, 100)}}

	merged := Consolidate(nil, batch)
	merged = Consolidate(merged, batch)

	if len(merged) != 1 {
		t.Fatalf("expected 1 title, got %d", len(merged))
	}
	// Append-only by design: no identity dedup.
	if len(merged[0].Reviews) != 8 {
		t.Errorf("expected 8 reviews after double merge, got %d", len(merged[0].Reviews))
	}
}

func TestConsolidateSortsByAppID(t *testing.T) {
	existing := []TitleReviews{{AppID: 30, Reviews: makeReviews(1, 100)}}
	batches := []TitleReviews{
		{AppID: 20, Reviews: makeReviews(1, 200)},
		{AppID: 10, Reviews: makeReviews(1, 300)},
	}

	merged := Consolidate(existing, batches)
	if len(merged) != 3 {
		t.Fatalf("expected 3 titles, got %d", len(merged))
	}
	for i, want := range []int64{10, 20, 30} {
		if merged[i].AppID != want {
			t.Errorf("position %d: expected appid %d, got %d", i, want, merged[i].AppID)
		}
	}
}

func TestConsolidatePreservesExistingOrderOfReviews(t *testing.T) {
	existing := []TitleReviews{{AppID: 10, Reviews: makeReviews(2, 100)}}
	batches := []TitleReviews{{AppID: 10, Reviews: makeReviews(2, 500)}}

	merged := Consolidate(existing, batches)
	reviews := merged[0].Reviews
	if len(reviews) != 4 {
		t.Fatalf("expected 4 reviews, got %d", len(reviews))
	}
	if reviews[0].TimestampCreated != 100 || reviews[3].TimestampCreated != 501 {
		t.Error("expected batch reviews appended after existing sequence")
	}
}

func TestConsolidateFileMissingBatch(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "all_reviews.jsonl")

	_, _, err := ConsolidateFile(storePath, filepath.Join(dir, "nope.json"))
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, statErr := os.Stat(storePath); !os.IsNotExist(statErr) {
		t.Error("expected store to be left untouched")
	}
}

func TestConsolidateFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "combined", "all_reviews.jsonl")
	batchPath := filepath.Join(dir, "reviews_recent_data_20260825.json")

	batches := []TitleReviews{
		{AppID: 20, Reviews: makeReviews(2, 100)},
		{AppID: 10, Reviews: makeReviews(3, 200)},
	}
	if err := WriteDailyBatch(batchPath, batches); err != nil {
		t.Fatalf("writing batch: %v", err)
	}

	added, total, err := ConsolidateFile(storePath, batchPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != 5 || total != 5 {
		t.Errorf("expected added=5 total=5, got added=%d total=%d", added, total)
	}

	// Re-running the same day's batch doubles the store.
	added, total, err = ConsolidateFile(storePath, batchPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != 5 || total != 10 {
		t.Errorf("expected added=5 total=10, got added=%d total=%d", added, total)
	}

	titles, err := ReadStore(storePath)
	if err != nil {
		t.Fatalf("reading store: %v", err)
	}
	if len(titles) != 2 {
		t.Fatalf("expected 2 titles, got %d", len(titles))
	}
	if titles[0].AppID != 10 || titles[1].AppID != 20 {
		t.Errorf("expected appids sorted ascending, got %d, %d", titles[0].AppID, titles[1].AppID)
	}
}
