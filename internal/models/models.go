package models

// RaceEntry is one rider's result in one race/category combination, after
// normalization. Optional numeric fields are nil when the source recorded
// no value (DNF, missing lap, no points awarded).
type RaceEntry struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Team         string   `json:"team"`
	Race         string   `json:"race"`
	RaceNum      int      `json:"race_num"`
	RaceCategory string   `json:"race_category"`
	Placement    string   `json:"placement"`
	TotalTime    string   `json:"total_time"`
	TotalSeconds *float64 `json:"total_seconds"`
	Points       *float64 `json:"points"`
	Lap2         *float64 `json:"lap2"`
	Lap3         *float64 `json:"lap3"`
	Lap4         *float64 `json:"lap4"`
	Penalty      *float64 `json:"penalty"`
}

// EntryFilter narrows repository listings. Race is matched by substring
// containment ("Race 2" matches "Race 2 - Manti"); Team and Category are
// exact matches. Zero values mean "no constraint".
type EntryFilter struct {
	Race     string
	Team     string
	Category string
}

// TeamCount pairs a team name with its season-wide entry count.
type TeamCount struct {
	Team  string `json:"team"`
	Count int    `json:"count"`
}

// DatasetStatus reports the outcome of the startup load to the
// presentation layer.
type DatasetStatus struct {
	Loaded  bool   `json:"loaded"`
	Failed  bool   `json:"failed"`
	Entries int    `json:"entries"`
	Season  string `json:"season"`
}
