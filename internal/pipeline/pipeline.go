// Package pipeline sequences the daily ingestion and analysis steps.
package pipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/TobiSchelling/ReviewPulse/internal/config"
	"github.com/TobiSchelling/ReviewPulse/internal/database"
	"github.com/TobiSchelling/ReviewPulse/internal/export"
	"github.com/TobiSchelling/ReviewPulse/internal/sentiment"
	"github.com/TobiSchelling/ReviewPulse/internal/steam"
	"github.com/TobiSchelling/ReviewPulse/internal/store"
	"github.com/TobiSchelling/ReviewPulse/internal/watermark"
	"github.com/TobiSchelling/ReviewPulse/internal/wordfreq"
)

// StepResult holds the result of a single pipeline step.
type StepResult struct {
	Name    string
	Summary string
	Err     error
}

// Result holds the results of a pipeline run.
type Result struct {
	Day   string
	Steps []StepResult
}

// Pipeline orchestrates the 5-step collection and analysis pipeline.
// Steps run strictly sequentially: one title at a time, one page at a
// time within a title.
type Pipeline struct {
	cfg *config.Config
	db  *database.DB
}

// New creates a new pipeline.
func New(cfg *config.Config, db *database.DB) *Pipeline {
	return &Pipeline{cfg: cfg, db: db}
}

// Run executes the full pipeline: collect, consolidate, export,
// sentiment, word frequencies.
func (p *Pipeline) Run(day string) *Result {
	r := &Result{Day: day}

	step := p.runCollect(day)
	r.Steps = append(r.Steps, step)
	if step.Err != nil {
		return r
	}

	p.appendAnalysis(r, day)
	return r
}

// Analyze executes the analysis steps only, against whatever artifacts
// exist for the day.
func (p *Pipeline) Analyze(day string) *Result {
	r := &Result{Day: day}
	p.appendAnalysis(r, day)
	return r
}

// Collect executes the collection step only.
func (p *Pipeline) Collect(day string) *Result {
	return &Result{Day: day, Steps: []StepResult{p.runCollect(day)}}
}

func (p *Pipeline) appendAnalysis(r *Result, day string) {
	r.Steps = append(r.Steps, p.runConsolidate(day))
	r.Steps = append(r.Steps, p.runExport())
	r.Steps = append(r.Steps, p.runSentiment())
	r.Steps = append(r.Steps, p.runWordFreq())
}

// runCollect fetches reviews and player counts for every tracked title.
// The watermark file is rewritten only after all titles finish, so a
// crash mid-run leaves it untouched and the next run re-fetches the
// same window.
func (p *Pipeline) runCollect(day string) StepResult {
	log.Println("Step 1/5: Collecting reviews...")

	titles, err := p.db.GetTitles()
	if err != nil {
		return StepResult{Name: "Collect", Err: fmt.Errorf("loading tracked titles: %w", err)}
	}
	if len(titles) == 0 {
		return StepResult{Name: "Collect", Summary: "No tracked titles. Add one with 'reviewpulse titles add'."}
	}

	dataDir := p.cfg.GetDataDir()
	client := steam.NewClient(p.cfg.Source.StoreURL, p.cfg.Source.APIURL, p.cfg.Source.APIKeyEnv, p.cfg.Fetch.PageSize)
	marks := watermark.NewStore(store.WatermarkPath(dataDir))

	lastSeen, err := marks.Load()
	if err != nil {
		return StepResult{Name: "Collect", Err: err}
	}

	newMarks := make(map[int64]int64, len(titles))
	batches := make([]store.TitleReviews, 0, len(titles))
	fetched := 0

	for _, t := range titles {
		if count, err := client.CurrentPlayers(t.AppID); err != nil {
			log.Printf("player count for appid %d: %v", t.AppID, err)
		} else if err := p.db.InsertPlayerSample(t.AppID, day, count); err != nil {
			log.Printf("recording player sample for appid %d: %v", t.AppID, err)
		}

		reviews, maxTS := client.FetchReviews(t.AppID, p.cfg.Fetch.MaxReviews, lastSeen[t.AppID])
		log.Printf("appid %d (%s): %d new reviews", t.AppID, t.Name, len(reviews))

		newMarks[t.AppID] = maxTS
		batches = append(batches, store.TitleReviews{AppID: t.AppID, Reviews: reviews})
		fetched += len(reviews)
	}

	if err := store.WriteDailyBatch(store.BatchPath(dataDir, day), batches); err != nil {
		return StepResult{Name: "Collect", Err: err}
	}
	if err := marks.Save(newMarks); err != nil {
		return StepResult{Name: "Collect", Err: err}
	}
	if _, err := p.db.InsertRun(day, len(titles), fetched); err != nil {
		log.Printf("recording run: %v", err)
	}

	return StepResult{
		Name:    "Collect",
		Summary: fmt.Sprintf("Fetched %d reviews across %d titles", fetched, len(titles)),
	}
}

func (p *Pipeline) runConsolidate(day string) StepResult {
	log.Println("Step 2/5: Consolidating daily batches...")

	dataDir := p.cfg.GetDataDir()
	batchPath := store.BatchPath(dataDir, day)

	added, total, err := store.ConsolidateFile(store.StorePath(dataDir), batchPath)
	if os.IsNotExist(err) {
		return StepResult{
			Name:    "Consolidate",
			Summary: fmt.Sprintf("No batch file for %s (%s); store left untouched", day, filepath.Base(batchPath)),
		}
	}
	if err != nil {
		return StepResult{Name: "Consolidate", Err: err}
	}
	return StepResult{
		Name:    "Consolidate",
		Summary: fmt.Sprintf("Added %d reviews (%d total in store)", added, total),
	}
}

func (p *Pipeline) runExport() StepResult {
	log.Println("Step 3/5: Exporting flattened CSV...")

	dataDir := p.cfg.GetDataDir()
	titles, err := store.ReadStore(store.StorePath(dataDir))
	if err != nil {
		return StepResult{Name: "Export", Err: err}
	}

	csvPath := filepath.Join(store.ExportDir(dataDir), "all_reviews.csv")
	rows, err := export.WriteReviewsCSV(csvPath, titles)
	if err != nil {
		return StepResult{Name: "Export", Err: err}
	}
	return StepResult{
		Name:    "Export",
		Summary: fmt.Sprintf("Wrote %d rows to %s", rows, filepath.Base(csvPath)),
	}
}

func (p *Pipeline) runSentiment() StepResult {
	log.Println("Step 4/5: Scoring sentiment...")

	dataDir := p.cfg.GetDataDir()
	titles, err := store.ReadStore(store.StorePath(dataDir))
	if err != nil {
		return StepResult{Name: "Sentiment", Err: err}
	}

	scored := sentiment.NewAnalyzer().Analyze(titles)
	sentiment.LogSummary(scored)

	exportDir := store.ExportDir(dataDir)
	if err := export.WriteScoredJSONL(filepath.Join(exportDir, "reviews_with_sentiment.jsonl"), scored); err != nil {
		return StepResult{Name: "Sentiment", Err: err}
	}
	if err := export.WriteScoredCSV(filepath.Join(exportDir, "reviews_with_sentiment.csv"), scored); err != nil {
		return StepResult{Name: "Sentiment", Err: err}
	}
	return StepResult{
		Name:    "Sentiment",
		Summary: fmt.Sprintf("Scored %d reviews", len(scored)),
	}
}

func (p *Pipeline) runWordFreq() StepResult {
	log.Println("Step 5/5: Aggregating word frequencies...")

	dataDir := p.cfg.GetDataDir()
	exportDir := store.ExportDir(dataDir)

	scored, err := export.ReadScoredJSONL(filepath.Join(exportDir, "reviews_with_sentiment.jsonl"))
	if os.IsNotExist(err) {
		return StepResult{Name: "WordFreq", Summary: "No scored reviews; skipping"}
	}
	if err != nil {
		return StepResult{Name: "WordFreq", Err: err}
	}

	globalStats := wordfreq.AggregateGlobal(scored, wordfreq.Options{
		MinWordLength: p.cfg.Analysis.MinWordLength,
		MinFrequency:  p.cfg.Analysis.GlobalMinFrequency,
	})
	if err := wordfreq.WriteGlobalCSV(filepath.Join(exportDir, "word_frequencies.csv"), globalStats); err != nil {
		return StepResult{Name: "WordFreq", Err: err}
	}

	titleStats := wordfreq.AggregateByTitle(scored, wordfreq.Options{
		MinWordLength: p.cfg.Analysis.MinWordLength,
		MinFrequency:  p.cfg.Analysis.TitleMinFrequency,
	})
	if err := wordfreq.WriteTitleCSV(filepath.Join(exportDir, "word_frequencies_by_game.csv"), titleStats); err != nil {
		return StepResult{Name: "WordFreq", Err: err}
	}

	return StepResult{
		Name:    "WordFreq",
		Summary: fmt.Sprintf("%d global words, %d word-title pairs", len(globalStats), len(titleStats)),
	}
}
