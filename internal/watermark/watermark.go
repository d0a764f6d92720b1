// Package watermark persists, per title, the newest review creation
// time already ingested. The next incremental fetch only accepts
// reviews strictly newer than the stored value.
package watermark

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// Store reads and writes the watermark file. Single writer; the caller
// guarantees one run at a time.
type Store struct {
	path string
}

// NewStore creates a store bound to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted appid -> newest timestamp_created mapping.
// A missing file yields an empty mapping.
func (s *Store) Load() (map[int64]int64, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[int64]int64{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading watermarks: %w", err)
	}

	var raw map[string]int64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing watermarks: %w", err)
	}

	marks := make(map[int64]int64, len(raw))
	for key, ts := range raw {
		appID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			log.Printf("skipping non-numeric watermark key %q", key)
			continue
		}
		marks[appID] = ts
	}
	return marks, nil
}

// Save overwrites the persisted mapping in full.
func (s *Store) Save(marks map[int64]int64) error {
	raw := make(map[string]int64, len(marks))
	for appID, ts := range marks {
		raw[strconv.FormatInt(appID, 10)] = ts
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding watermarks: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing watermarks: %w", err)
	}
	return nil
}
