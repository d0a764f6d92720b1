// Package export flattens the cumulative review store into BI-ready
// CSV and JSONL artifacts.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/TobiSchelling/ReviewPulse/internal/store"
)

// reviewColumns is the fixed raw export schema, one row per review.
var reviewColumns = []string{
	"appid",
	"recommendation_id",
	"author_steamid",
	"author_num_games_owned",
	"author_num_reviews",
	"author_playtime_forever",
	"author_playtime_last_two_weeks",
	"author_playtime_at_review",
	"author_last_played",
	"language",
	"review",
	"timestamp_created",
	"timestamp_updated",
	"voted_up",
	"votes_up",
	"votes_funny",
	"weighted_vote_score",
	"comment_count",
	"steam_purchase",
	"received_for_free",
	"written_during_early_access",
	"primarily_steam_deck",
}

// Project flattens the store into one row per review. Missing nested
// fields render as empty strings; projection never fails.
func Project(titles []store.TitleReviews) [][]string {
	var rows [][]string
	for _, t := range titles {
		for _, r := range t.Reviews {
			rows = append(rows, projectReview(t.AppID, r))
		}
	}
	return rows
}

func projectReview(appID int64, r store.Review) []string {
	authorFields := []string{"", "", "", "", "", "", ""}
	if a := r.Author; a != nil {
		authorFields = []string{
			a.SteamID,
			strconv.FormatInt(a.NumGamesOwned, 10),
			strconv.FormatInt(a.NumReviews, 10),
			strconv.FormatInt(a.PlaytimeForever, 10),
			strconv.FormatInt(a.PlaytimeLastTwoWeeks, 10),
			strconv.FormatInt(a.PlaytimeAtReview, 10),
			strconv.FormatInt(a.LastPlayed, 10),
		}
	}

	row := []string{
		strconv.FormatInt(appID, 10),
		r.RecommendationID,
	}
	row = append(row, authorFields...)
	row = append(row,
		r.Language,
		r.Text,
		strconv.FormatInt(r.TimestampCreated, 10),
		strconv.FormatInt(r.TimestampUpdated, 10),
		strconv.FormatBool(r.VotedUp),
		strconv.FormatInt(r.VotesUp, 10),
		strconv.FormatInt(r.VotesFunny, 10),
		r.WeightedVoteScore,
		strconv.FormatInt(r.CommentCount, 10),
		strconv.FormatBool(r.SteamPurchase),
		strconv.FormatBool(r.ReceivedForFree),
		strconv.FormatBool(r.EarlyAccess),
		strconv.FormatBool(r.SteamDeck),
	)
	return row
}

// WriteReviewsCSV writes the raw 22-column export and returns the row
// count.
func WriteReviewsCSV(path string, titles []store.TitleReviews) (int, error) {
	rows := Project(titles)
	if err := writeCSV(path, reviewColumns, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
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
