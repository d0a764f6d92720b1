package database

// Title is a catalog entry whose reviews are tracked.
type Title struct {
	AppID   int64
	Name    string
	AddedAt *string
}

// PlayerSample is one daily player-count poll result for a title.
type PlayerSample struct {
	AppID       int64
	Day         string
	PlayerCount int
	SampledAt   *string
}

// RunReport holds metadata about one collection run.
type RunReport struct {
	ID              int64
	Day             string
	TitlesProcessed int
	ReviewsFetched  int
	FinishedAt      *string
}

// Stats contains aggregate database statistics.
type Stats struct {
	TrackedTitles   int
	TotalRuns       int
	ReviewsFetched  int
	DaysWithSamples int
}
