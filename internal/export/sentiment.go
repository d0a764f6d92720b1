package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/TobiSchelling/ReviewPulse/internal/store"
)

// sentimentColumns is the enriched export schema, one row per scored
// review.
var sentimentColumns = []string{
	"appid",
	"recommendationid",
	"review",
	"voted_up",
	"language",
	"timestamp_created",
	"sentiment_compound",
	"sentiment_positive",
	"sentiment_neutral",
	"sentiment_negative",
	"sentiment_label",
}

// WriteScoredJSONL writes scored reviews one JSON object per line.
func WriteScoredJSONL(path string, reviews []store.Review) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, r := range reviews {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encoding review %s: %w", r.RecommendationID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("writing scored reviews: %w", err)
		}
	}
	return w.Flush()
}

// ReadScoredJSONL reads back a scored-review file. Malformed lines are
// logged and skipped.
func ReadScoredJSONL(path string) ([]store.Review, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reviews []store.Review
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var r store.Review
		if err := json.Unmarshal(line, &r); err != nil {
			log.Printf("skipping malformed scored review line %d: %v", lineNo, err)
			continue
		}
		reviews = append(reviews, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading scored reviews: %w", err)
	}
	return reviews, nil
}

// WriteScoredCSV writes the sentiment-enriched CSV export.
func WriteScoredCSV(path string, reviews []store.Review) error {
	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		scores := r.SentimentScores
		if scores == nil {
			scores = &store.SentimentScores{}
		}
		rows = append(rows, []string{
			strconv.FormatInt(r.AppID, 10),
			r.RecommendationID,
			r.Text,
			strconv.FormatBool(r.VotedUp),
			r.Language,
			strconv.FormatInt(r.TimestampCreated, 10),
			formatFloat(r.SentimentCompound),
			formatFloat(scores.Positive),
			formatFloat(scores.Neutral),
			formatFloat(scores.Negative),
			r.SentimentLabel,
		})
	}
	return writeCSV(path, sentimentColumns, rows)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
