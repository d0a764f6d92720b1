package steam

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TobiSchelling/ReviewPulse/internal/store"
)

type reviewPage struct {
	Success int            `json:"success"`
	Reviews []store.Review `json:"reviews"`
	Cursor  string         `json:"cursor"`
}

// pagedServer serves review pages keyed by the incoming cursor value.
func pagedServer(t *testing.T, pages map[string]reviewPage) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cursor := r.URL.Query().Get("cursor")
		page, ok := pages[cursor]
		if !ok {
			t.Errorf("unexpected cursor %q", cursor)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(page)
	}))
}

func testClient(baseURL string) *Client {
	return NewClient(baseURL, baseURL, "", 100)
}

func reviewsAt(timestamps ...int64) []store.Review {
	reviews := make([]store.Review, len(timestamps))
	for i, ts := range timestamps {
		reviews[i] = store.Review{
			RecommendationID: fmt.Sprintf("rec-%d", ts),
			Text:             "review body",
			TimestampCreated: ts,
		}
	}
	return reviews
}

func TestFetchReviewsPaginates(t *testing.T) {
	srv := pagedServer(t, map[string]reviewPage{
		"*":     {Success: 1, Reviews: reviewsAt(50, 40), Cursor: "page2"},
		"page2": {Success: 1, Reviews: reviewsAt(30, 20), Cursor: "page3"},
		"page3": {Success: 1, Reviews: nil, Cursor: ""},
	})
	defer srv.Close()

	reviews, mark := testClient(srv.URL).FetchReviews(570, 100, 0)
	if len(reviews) != 4 {
		t.Fatalf("expected 4 reviews, got %d", len(reviews))
	}
	if mark != 50 {
		t.Errorf("expected watermark 50, got %d", mark)
	}
}

func TestFetchReviewsHonorsCap(t *testing.T) {
	srv := pagedServer(t, map[string]reviewPage{
		"*":     {Success: 1, Reviews: reviewsAt(90, 80, 70), Cursor: "page2"},
		"page2": {Success: 1, Reviews: reviewsAt(60, 50, 40), Cursor: "page3"},
		"page3": {Success: 1, Reviews: reviewsAt(30), Cursor: ""},
	})
	defer srv.Close()

	reviews, _ := testClient(srv.URL).FetchReviews(570, 5, 0)
	if len(reviews) != 5 {
		t.Errorf("expected exactly 5 reviews, got %d", len(reviews))
	}
}

func TestFetchReviewsStopsOnSentinelCursor(t *testing.T) {
	srv := pagedServer(t, map[string]reviewPage{
		"*": {Success: 1, Reviews: reviewsAt(90, 80), Cursor: "*"},
	})
	defer srv.Close()

	reviews, _ := testClient(srv.URL).FetchReviews(570, 100, 0)
	if len(reviews) != 2 {
		t.Errorf("expected 2 reviews, got %d", len(reviews))
	}
}

func TestFetchReviewsWatermarkFilters(t *testing.T) {
	// page3 is deliberately absent: requesting it would fail the test.
	srv := pagedServer(t, map[string]reviewPage{
		"*":     {Success: 1, Reviews: reviewsAt(100, 90, 80), Cursor: "page2"},
		"page2": {Success: 1, Reviews: reviewsAt(70, 60), Cursor: "page3"},
	})
	defer srv.Close()

	// Watermark 75: page one keeps 100/90/80, page two filters to empty
	// and stops the fetch before page three is ever requested.
	reviews, mark := testClient(srv.URL).FetchReviews(570, 100, 75)
	if len(reviews) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(reviews))
	}
	for _, r := range reviews {
		if r.TimestampCreated <= 75 {
			t.Errorf("review %s at %d not newer than watermark", r.RecommendationID, r.TimestampCreated)
		}
	}
	if mark != 100 {
		t.Errorf("expected watermark 100, got %d", mark)
	}
}

func TestFetchReviewsWatermarkNeverDecreases(t *testing.T) {
	srv := pagedServer(t, map[string]reviewPage{
		"*": {Success: 1, Reviews: nil, Cursor: ""},
	})
	defer srv.Close()

	reviews, mark := testClient(srv.URL).FetchReviews(570, 100, 12345)
	if len(reviews) != 0 {
		t.Errorf("expected no reviews, got %d", len(reviews))
	}
	if mark != 12345 {
		t.Errorf("expected input watermark preserved, got %d", mark)
	}
}

func TestFetchReviewsFailedPageKeepsPartial(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			json.NewEncoder(w).Encode(reviewPage{Success: 1, Reviews: reviewsAt(90, 80), Cursor: "page2"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	reviews, mark := testClient(srv.URL).FetchReviews(570, 100, 0)
	if len(reviews) != 2 {
		t.Errorf("expected partial results preserved, got %d reviews", len(reviews))
	}
	if mark != 90 {
		t.Errorf("expected watermark 90, got %d", mark)
	}
}

func TestFetchReviewsUnsuccessfulResponse(t *testing.T) {
	srv := pagedServer(t, map[string]reviewPage{
		"*": {Success: 0},
	})
	defer srv.Close()

	reviews, _ := testClient(srv.URL).FetchReviews(570, 100, 0)
	if len(reviews) != 0 {
		t.Errorf("expected no reviews on success=0, got %d", len(reviews))
	}
}

func TestCurrentPlayers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":{"player_count":4321,"result":1}}`)
	}))
	defer srv.Close()

	count, err := testClient(srv.URL).CurrentPlayers(570)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 4321 {
		t.Errorf("expected 4321 players, got %d", count)
	}
}

func TestFetchAppList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":{"apps":[{"appid":570,"name":"Dota 2"},{"appid":730,"name":"Counter-Strike 2"}]}}`)
	}))
	defer srv.Close()

	apps, err := testClient(srv.URL).FetchAppList()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("expected 2 apps, got %d", len(apps))
	}
	if apps[0].AppID != 570 || apps[0].Name != "Dota 2" {
		t.Errorf("unexpected first app: %+v", apps[0])
	}
}
