package models

// TeamMetrics is the per-team summary recomputed on every selection or
// filter change. Nil pointer fields mean "no data to compute this from",
// which the presentation renders as a dash rather than zero.
type TeamMetrics struct {
	Team                 string         `json:"team"`
	TotalRacers          int            `json:"total_racers"`
	PodiumCount          int            `json:"podium_count"`
	Top25Count           int            `json:"top25_count"`
	GenderBalance        *float64       `json:"gender_balance"`
	AvgGapToWinner       *float64       `json:"avg_gap_to_winner"`
	CategoryDistribution map[string]int `json:"category_distribution"`
	TotalRaces           int            `json:"total_races"`
}

// RiderRace is one race in a rider's chronological history, enriched with
// ranking statistics derived against the full-season cohort.
type RiderRace struct {
	Race            string   `json:"race"`
	RaceNum         int      `json:"race_num"`
	Category        string   `json:"category"`
	Team            string   `json:"team"`
	Placement       int      `json:"placement"`
	TotalInCategory int      `json:"total_in_category"`
	Percentile      float64  `json:"percentile"`
	Time            string   `json:"time"`
	TotalSeconds    *float64 `json:"total_seconds"`
	GapToWinner     *float64 `json:"gap_to_winner"`
	IsPodium        bool     `json:"is_podium"`
	IsTop25         bool     `json:"is_top25"`
}

// RiderSummary is a rider's full race history. Team is the team of the
// chronologically-first entry; TeamChanged is set when later entries list
// a different team, so the caller can surface the switch instead of
// silently collapsing it.
type RiderSummary struct {
	Name        string      `json:"name"`
	Team        string      `json:"team"`
	TeamChanged bool        `json:"team_changed"`
	Races       []RiderRace `json:"races"`
	TotalRaces  int         `json:"total_races"`
	PodiumCount int         `json:"podium_count"`
	Top25Count  int         `json:"top25_count"`
}

// FunnelRow is one category in the beginner-to-advanced progression, with
// per-team counts for stacked rendering. Rows with TotalCount zero are
// never emitted.
type FunnelRow struct {
	Category   string         `json:"category"`
	TeamCounts []FunnelSlice  `json:"team_counts"`
	TotalCount int            `json:"total_count"`
}

// FunnelSlice is one team's share of a funnel row. WidthPct is
// Count/TotalCount*100; slices in a row sum to ~100.
type FunnelSlice struct {
	Team     string  `json:"team"`
	Count    int     `json:"count"`
	WidthPct float64 `json:"width_pct"`
}
