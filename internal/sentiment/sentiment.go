// Package sentiment scores review text with VADER and attaches a
// three-way label.
package sentiment

import (
	"log"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/TobiSchelling/ReviewPulse/internal/store"
)

// Compound-score cutoffs for the three-way label. Fixed, symmetric.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Analyzer wraps a VADER sentiment intensity analyzer.
type Analyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer creates an analyzer with the standard VADER lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Label classifies a compound score.
func Label(compound float64) string {
	switch {
	case compound >= positiveThreshold:
		return "positive"
	case compound <= negativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

// Score returns the four-way polarity for a text.
func (a *Analyzer) Score(text string) store.SentimentScores {
	s := a.sia.PolarityScores(text)
	return store.SentimentScores{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}
}

// Analyze walks the cumulative store and returns the flat sequence of
// scored reviews, each carrying its owning appid. Reviews with blank
// text are excluded entirely rather than scored as neutral.
func (a *Analyzer) Analyze(titles []store.TitleReviews) []store.Review {
	var scored []store.Review
	for _, t := range titles {
		for _, r := range t.Reviews {
			if strings.TrimSpace(r.Text) == "" {
				continue
			}
			scores := a.Score(r.Text)
			r.AppID = t.AppID
			r.SentimentScores = &scores
			r.SentimentCompound = scores.Compound
			r.SentimentLabel = Label(scores.Compound)
			scored = append(scored, r)
		}
	}
	return scored
}

// LogSummary logs the label distribution and average compound score.
func LogSummary(reviews []store.Review) {
	if len(reviews) == 0 {
		log.Println("no reviews to summarize")
		return
	}

	var positive, neutral, negative int
	var totalCompound float64
	for _, r := range reviews {
		totalCompound += r.SentimentCompound
		switch r.SentimentLabel {
		case "positive":
			positive++
		case "neutral":
			neutral++
		default:
			negative++
		}
	}

	total := len(reviews)
	log.Printf("sentiment: %d reviews (%d positive, %d neutral, %d negative), avg compound %.4f",
		total, positive, neutral, negative, totalCompound/float64(total))
}
