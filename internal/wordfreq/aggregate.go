package wordfreq

import (
	"math"
	"sort"

	"github.com/TobiSchelling/ReviewPulse/internal/store"
)

// Options controls tokenization and frequency filtering.
type Options struct {
	MinWordLength int
	MinFrequency  int
}

// WordStat is one row of the global word dataset.
type WordStat struct {
	Word          string
	Frequency     int
	AvgCompound   float64
	PositiveCount int
	NeutralCount  int
	NegativeCount int
	DominantLabel string
	UniqueTitles  int
}

// TitleWordStat is one row of the per-title word dataset.
type TitleWordStat struct {
	AppID         int64
	Word          string
	Frequency     int
	AvgCompound   float64
	PositiveCount int
	NeutralCount  int
	NegativeCount int
	DominantLabel string
}

type entry struct {
	frequency     int
	totalCompound float64
	positive      int
	neutral       int
	negative      int
	titles        map[int64]struct{}
}

func (e *entry) add(r store.Review) {
	e.frequency++
	e.totalCompound += r.SentimentCompound
	switch r.SentimentLabel {
	case "positive":
		e.positive++
	case "neutral":
		e.neutral++
	default:
		e.negative++
	}
}

// AggregateGlobal counts every token occurrence across all scored
// reviews, keyed by word. Repeats within one review all count. Words
// below opts.MinFrequency are dropped; output is sorted by frequency
// descending.
func AggregateGlobal(reviews []store.Review, opts Options) []WordStat {
	stopwords := GlobalStopwords()
	stats := make(map[string]*entry)

	for _, r := range reviews {
		for _, w := range Tokenize(r.Text, opts.MinWordLength, stopwords) {
			e := stats[w]
			if e == nil {
				e = &entry{titles: make(map[int64]struct{})}
				stats[w] = e
			}
			e.add(r)
			e.titles[r.AppID] = struct{}{}
		}
	}

	out := make([]WordStat, 0, len(stats))
	for w, e := range stats {
		if e.frequency < opts.MinFrequency {
			continue
		}
		out = append(out, WordStat{
			Word:          w,
			Frequency:     e.frequency,
			AvgCompound:   round4(e.totalCompound / float64(e.frequency)),
			PositiveCount: e.positive,
			NeutralCount:  e.neutral,
			NegativeCount: e.negative,
			DominantLabel: dominantLabel(e.positive, e.neutral, e.negative),
			UniqueTitles:  len(e.titles),
		})
	}

	// Word ascending as tiebreak keeps output stable across runs.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Word < out[j].Word
	})
	return out
}

type titleWordKey struct {
	word  string
	appID int64
}

// AggregateByTitle counts tokens keyed by (word, appid). Within a
// single review each qualifying word counts at most once, so the
// frequency is the number of reviews mentioning the word. Output is
// sorted by (appid ascending, frequency descending).
func AggregateByTitle(reviews []store.Review, opts Options) []TitleWordStat {
	stopwords := TitleStopwords()
	stats := make(map[titleWordKey]*entry)

	for _, r := range reviews {
		seen := make(map[string]struct{})
		for _, w := range Tokenize(r.Text, opts.MinWordLength, stopwords) {
			seen[w] = struct{}{}
		}
		for w := range seen {
			key := titleWordKey{word: w, appID: r.AppID}
			e := stats[key]
			if e == nil {
				e = &entry{}
				stats[key] = e
			}
			e.add(r)
		}
	}

	out := make([]TitleWordStat, 0, len(stats))
	for key, e := range stats {
		if e.frequency < opts.MinFrequency {
			continue
		}
		out = append(out, TitleWordStat{
			AppID:         key.appID,
			Word:          key.word,
			Frequency:     e.frequency,
			AvgCompound:   round4(e.totalCompound / float64(e.frequency)),
			PositiveCount: e.positive,
			NeutralCount:  e.neutral,
			NegativeCount: e.negative,
			DominantLabel: dominantLabel(e.positive, e.neutral, e.negative),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AppID != out[j].AppID {
			return out[i].AppID < out[j].AppID
		}
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// dominantLabel picks the label with the highest count. Ties resolve in
// the fixed order positive, neutral, negative.
func dominantLabel(positive, neutral, negative int) string {
	best, label := positive, "positive"
	if neutral > best {
		best, label = neutral, "neutral"
	}
	if negative > best {
		label = "negative"
	}
	return label
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
