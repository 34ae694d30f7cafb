package analytics

import (
	"sort"

	"github.com/racelens/racelens/internal/models"
)

// SelectableTeams returns the teams eligible for the comparison view:
// strictly more than minEntries entries across the whole season, ordered
// by descending entry count with ties broken by first appearance in the
// dataset. The list is computed from the unfiltered season so the set of
// buttons does not shift when the race filter changes.
func SelectableTeams(entries []models.RaceEntry, minEntries int) []models.TeamCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, e := range entries {
		if _, ok := counts[e.Team]; !ok {
			firstSeen[e.Team] = i
		}
		counts[e.Team]++
	}

	teams := make([]models.TeamCount, 0, len(counts))
	for team, n := range counts {
		if n > minEntries {
			teams = append(teams, models.TeamCount{Team: team, Count: n})
		}
	}
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].Count != teams[j].Count {
			return teams[i].Count > teams[j].Count
		}
		return firstSeen[teams[i].Team] < firstSeen[teams[j].Team]
	})
	return teams
}

// ComputeTeamMetrics derives per-team summary metrics for the selected
// teams. Cohort sizes and group winners come from the race-filtered
// dataset, not the whole season: selecting a single race shrinks category
// fields and changes who counts as the winner. The result contains only
// the selected teams.
func ComputeTeamMetrics(entries []models.RaceEntry, raceFilter string, selectedTeams []string) map[string]models.TeamMetrics {
	filtered := FilterByRace(entries, raceFilter)
	cohorts := categorySizes(filtered)
	winners := groupWinners(filtered)

	metrics := make(map[string]models.TeamMetrics, len(selectedTeams))
	for _, team := range selectedTeams {
		metrics[team] = teamMetricsFor(team, filtered, cohorts, winners)
	}
	return metrics
}

func teamMetricsFor(team string, filtered []models.RaceEntry, cohorts map[string]int, winners map[groupKey]models.RaceEntry) models.TeamMetrics {
	m := models.TeamMetrics{
		Team:                 team,
		CategoryDistribution: make(map[string]int),
	}

	racers := make(map[string]struct{})
	var femaleEntries, maleEntries int
	var gapSum float64
	var gapSamples int

	for _, e := range filtered {
		if e.Team != team {
			continue
		}
		m.TotalRaces++
		racers[e.Name] = struct{}{}
		m.CategoryDistribution[e.RaceCategory]++

		placement := parsePlacement(e.Placement)
		if placement >= 1 && placement <= PodiumMaxPlacement {
			m.PodiumCount++
		}
		if placement >= 1 && placement <= top25Threshold(cohorts[e.RaceCategory]) {
			m.Top25Count++
		}

		switch ClassifyGender(e.RaceCategory) {
		case GenderFemale:
			femaleEntries++
		case GenderMale:
			maleEntries++
		}

		// Gap samples need timing on both sides; absent timing is
		// skipped, never treated as a zero-second gap.
		if placement > 1 && e.TotalSeconds != nil {
			winner, ok := winners[groupKey{race: e.Race, category: e.RaceCategory}]
			if ok && winner.TotalSeconds != nil {
				gapSum += *e.TotalSeconds - *winner.TotalSeconds
				gapSamples++
			}
		}
	}

	m.TotalRacers = len(racers)
	if labelled := femaleEntries + maleEntries; labelled > 0 {
		pct := float64(femaleEntries) / float64(labelled) * 100
		m.GenderBalance = &pct
	}
	if gapSamples > 0 {
		avg := gapSum / float64(gapSamples)
		m.AvgGapToWinner = &avg
	}
	return m
}
