package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Review bodies can be long; allow lines well beyond the bufio default.
const maxLineBytes = 16 * 1024 * 1024

// ReadStore reads the cumulative JSONL store. A missing file yields an
// empty store. Malformed lines are logged and skipped; the remaining
// lines keep being processed.
func ReadStore(path string) ([]TitleReviews, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	defer f.Close()

	var titles []TitleReviews
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record TitleReviews
		if err := json.Unmarshal(line, &record); err != nil {
			log.Printf("skipping malformed store line %d: %v", lineNo, err)
			continue
		}
		titles = append(titles, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading store: %w", err)
	}
	return titles, nil
}

// WriteStore writes the full store, one JSON record per line.
func WriteStore(path string, titles []TitleReviews) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, record := range titles {
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("encoding appid %d: %w", record.AppID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("writing store: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing store: %w", err)
	}
	return nil
}

// WriteDailyBatch writes a day's per-title fetch batches as a single
// JSON array file.
func WriteDailyBatch(path string, batches []TitleReviews) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating reviews directory: %w", err)
	}
	data, err := json.MarshalIndent(batches, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding daily batch: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing daily batch: %w", err)
	}
	return nil
}

// ReadDailyBatch reads a daily batch file. The caller distinguishes a
// missing file (os.IsNotExist) from other failures.
func ReadDailyBatch(path string) ([]TitleReviews, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var batches []TitleReviews
	if err := json.Unmarshal(data, &batches); err != nil {
		return nil, fmt.Errorf("parsing daily batch: %w", err)
	}
	return batches, nil
}
