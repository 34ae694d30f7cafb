package analytics

import "github.com/racelens/racelens/internal/models"

// DefaultCategoryOrder is the beginner-to-advanced category progression
// used when no order file is configured. It is a fixed enumeration, not
// derived from the data.
var DefaultCategoryOrder = []string{
	"Freshman Girls",
	"Freshman Boys",
	"Sophomore Girls",
	"Sophomore Boys",
	"JV Girls",
	"JV Boys",
	"Varsity Girls",
	"Varsity Boys",
}

// BuildFunnel assembles the category funnel for the selected teams from
// their already-computed category distributions. Categories are emitted
// in the given order; a category no selected team has riders in is
// omitted entirely rather than rendered as a zero-width row.
func BuildFunnel(selectedTeams []string, metrics map[string]models.TeamMetrics, categories []string) []models.FunnelRow {
	var rows []models.FunnelRow
	for _, category := range categories {
		row := models.FunnelRow{Category: category}
		for _, team := range selectedTeams {
			count := metrics[team].CategoryDistribution[category]
			row.TeamCounts = append(row.TeamCounts, models.FunnelSlice{Team: team, Count: count})
			row.TotalCount += count
		}
		if row.TotalCount == 0 {
			continue
		}
		for i := range row.TeamCounts {
			row.TeamCounts[i].WidthPct = float64(row.TeamCounts[i].Count) / float64(row.TotalCount) * 100
		}
		rows = append(rows, row)
	}
	return rows
}
