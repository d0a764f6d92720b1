package store

import (
	"fmt"
	"log"
	"sort"
)

// Consolidate merges a day's per-title batches into the cumulative
// store and returns the updated store sorted by appid ascending.
func Consolidate(existing, batches []TitleReviews) []TitleReviews {
	byApp := make(map[int64]*TitleReviews, len(existing))
	for i := range existing {
		byApp[existing[i].AppID] = &existing[i]
	}

	for _, batch := range batches {
		record, ok := byApp[batch.AppID]
		if !ok {
			record = &TitleReviews{AppID: batch.AppID}
			byApp[batch.AppID] = record
		}
		mergeBatch(record, batch.Reviews)
	}

	merged := make([]TitleReviews, 0, len(byApp))
	for _, record := range byApp {
		merged = append(merged, *record)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].AppID < merged[j].AppID })
	return merged
}

// mergeBatch appends a batch onto a title's existing sequence. The merge
// is append-only with no identity-based dedup: replaying the same day's
// batch duplicates entries. Swap this function for a
// recommendationid-keyed strategy to change that without touching callers.
func mergeBatch(record *TitleReviews, reviews []Review) {
	record.Reviews = append(record.Reviews, reviews...)
}

// ConsolidateFile merges the daily batch file at batchPath into the
// cumulative store at storePath. It returns the number of reviews added
// and the resulting store total. A missing batch file is passed through
// as the os.IsNotExist error so callers can skip the step.
func ConsolidateFile(storePath, batchPath string) (added, total int, err error) {
	batches, err := ReadDailyBatch(batchPath)
	if err != nil {
		return 0, 0, err
	}

	existing, err := ReadStore(storePath)
	if err != nil {
		return 0, 0, err
	}
	log.Printf("loaded %d titles from cumulative store", len(existing))

	merged := Consolidate(existing, batches)
	if err := WriteStore(storePath, merged); err != nil {
		return 0, 0, fmt.Errorf("writing merged store: %w", err)
	}

	for _, b := range batches {
		added += len(b.Reviews)
	}
	for _, t := range merged {
		total += len(t.Reviews)
	}
	return added, total, nil
}
