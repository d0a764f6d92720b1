package steam

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/TobiSchelling/ReviewPulse/internal/store"
)

// cursorStart is the reserved sentinel that requests the first page.
const cursorStart = "*"

// FetchReviews pages the review endpoint for one title, newest first,
// and returns up to maxReviews reviews along with the new watermark.
//
// With a non-zero watermark only reviews with timestamp_created strictly
// greater than it are kept; a page filtered down to nothing ends the
// fetch, since the recency ordering guarantees no newer items follow.
// The returned watermark is the maximum timestamp_created seen, seeded
// from the input watermark, so it never decreases.
//
// Termination compares the next cursor against the start sentinel only,
// never against the cursor just used. A source that repeats a
// non-sentinel cursor keeps the loop alive until maxReviews caps it.
func (c *Client) FetchReviews(appID int64, maxReviews int, watermark int64) ([]store.Review, int64) {
	var all []store.Review
	cursor := cursorStart
	maxTimestamp := watermark

	for len(all) < maxReviews {
		page, next, ok := c.fetchReviewPage(appID, cursor)
		if !ok || len(page) == 0 {
			break
		}

		if watermark > 0 {
			page = filterNewer(page, watermark)
			if len(page) == 0 {
				break
			}
		}

		all = append(all, page...)
		for _, r := range page {
			if r.TimestampCreated > maxTimestamp {
				maxTimestamp = r.TimestampCreated
			}
		}

		if next == "" || next == cursorStart {
			break
		}
		cursor = next

		log.Printf("fetched %d reviews for appid %d...", len(all), appID)
	}

	if len(all) > maxReviews {
		all = all[:maxReviews]
	}
	return all, maxTimestamp
}

// fetchReviewPage requests one page. Any failure (transport, HTTP
// status, decode, success flag) is logged and reported as not-ok so the
// caller keeps whatever it accumulated.
func (c *Client) fetchReviewPage(appID int64, cursor string) ([]store.Review, string, bool) {
	params := url.Values{
		"json":         {"1"},
		"cursor":       {cursor},
		"num_per_page": {strconv.Itoa(c.pageSize)},
		"filter":       {"recent"},
	}
	if c.token != "" {
		params.Set("access_token", c.token)
	}

	reqURL := fmt.Sprintf("%s/appreviews/%d?%s", c.storeURL, appID, params.Encode())
	resp, err := c.client.Get(reqURL)
	if err != nil {
		log.Printf("review page request for appid %d: %v", appID, err)
		return nil, "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("review page for appid %d: HTTP %d", appID, resp.StatusCode)
		return nil, "", false
	}

	var result struct {
		Success int            `json:"success"`
		Reviews []store.Review `json:"reviews"`
		Cursor  string         `json:"cursor"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("review page decode for appid %d: %v", appID, err)
		return nil, "", false
	}
	if result.Success != 1 {
		log.Printf("review page for appid %d: success=%d", appID, result.Success)
		return nil, "", false
	}
	return result.Reviews, result.Cursor, true
}

// filterNewer keeps reviews created strictly after the watermark.
func filterNewer(reviews []store.Review, watermark int64) []store.Review {
	kept := reviews[:0]
	for _, r := range reviews {
		if r.TimestampCreated > watermark {
			kept = append(kept, r)
		}
	}
	return kept
}
