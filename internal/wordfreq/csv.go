package wordfreq

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

var globalColumns = []string{
	"word",
	"frequency",
	"avg_sentiment_compound",
	"positive_count",
	"neutral_count",
	"negative_count",
	"dominant_sentiment",
	"unique_games",
}

var titleColumns = []string{
	"appid",
	"word",
	"frequency",
	"avg_sentiment_compound",
	"positive_count",
	"neutral_count",
	"negative_count",
	"dominant_sentiment",
}

// WriteGlobalCSV writes the global word-frequency dataset.
func WriteGlobalCSV(path string, stats []WordStat) error {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Word,
			strconv.Itoa(s.Frequency),
			strconv.FormatFloat(s.AvgCompound, 'f', -1, 64),
			strconv.Itoa(s.PositiveCount),
			strconv.Itoa(s.NeutralCount),
			strconv.Itoa(s.NegativeCount),
			s.DominantLabel,
			strconv.Itoa(s.UniqueTitles),
		})
	}
	return writeCSV(path, globalColumns, rows)
}

// WriteTitleCSV writes the per-title word-frequency dataset.
func WriteTitleCSV(path string, stats []TitleWordStat) error {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			strconv.FormatInt(s.AppID, 10),
			s.Word,
			strconv.Itoa(s.Frequency),
			strconv.FormatFloat(s.AvgCompound, 'f', -1, 64),
			strconv.Itoa(s.PositiveCount),
			strconv.Itoa(s.NeutralCount),
			strconv.Itoa(s.NegativeCount),
			s.DominantLabel,
		})
	}
	return writeCSV(path, titleColumns, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
