package store

// Author is the nested author sub-record on a review. The source omits
// fields freely, so everything here has a zero value that renders empty.
type Author struct {
	SteamID              string `json:"steamid,omitempty"`
	NumGamesOwned        int64  `json:"num_games_owned"`
	NumReviews           int64  `json:"num_reviews"`
	PlaytimeForever      int64  `json:"playtime_forever"`
	PlaytimeLastTwoWeeks int64  `json:"playtime_last_two_weeks"`
	PlaytimeAtReview     int64  `json:"playtime_at_review"`
	LastPlayed           int64  `json:"last_played"`
}

// Review is a single user review as returned by the source API. The
// payload is immutable once fetched; only the sentiment step attaches
// fields afterwards.
type Review struct {
	RecommendationID  string  `json:"recommendationid,omitempty"`
	Author            *Author `json:"author,omitempty"`
	Language          string  `json:"language,omitempty"`
	Text              string  `json:"review"`
	TimestampCreated  int64   `json:"timestamp_created"`
	TimestampUpdated  int64   `json:"timestamp_updated"`
	VotedUp           bool    `json:"voted_up"`
	VotesUp           int64   `json:"votes_up"`
	VotesFunny        int64   `json:"votes_funny"`
	WeightedVoteScore string  `json:"weighted_vote_score,omitempty"`
	CommentCount      int64   `json:"comment_count"`
	SteamPurchase     bool    `json:"steam_purchase"`
	ReceivedForFree   bool    `json:"received_for_free"`
	EarlyAccess       bool    `json:"written_during_early_access"`
	SteamDeck         bool    `json:"primarily_steam_deck"`

	// Attached by the sentiment step; absent in the raw store.
	AppID             int64            `json:"appid,omitempty"`
	SentimentScores   *SentimentScores `json:"sentiment_scores,omitempty"`
	SentimentCompound float64          `json:"sentiment_compound,omitempty"`
	SentimentLabel    string           `json:"sentiment_label,omitempty"`
}

// SentimentScores holds the four-way VADER polarity for a review.
type SentimentScores struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// TitleReviews is one record of the cumulative store: a title and its
// growing review sequence.
type TitleReviews struct {
	AppID   int64    `json:"appid"`
	Reviews []Review `json:"reviews"`
}
