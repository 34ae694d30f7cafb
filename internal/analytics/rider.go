package analytics

import (
	"sort"
	"strings"

	"github.com/racelens/racelens/internal/models"
)

// ComputeRiderSummary builds a rider's chronological race history with
// derived ranking statistics. Returns nil when riderName is empty or no
// entries match. The rider view has no race filter, so cohorts and
// winners are looked up in the full season dataset.
//
// The reported Team is the team of the chronologically-first entry; a
// rider who switched teams mid-season keeps that banner, but each race
// row carries its own team and TeamChanged flags the switch so callers
// can surface it.
func ComputeRiderSummary(entries []models.RaceEntry, riderName string) *models.RiderSummary {
	if riderName == "" {
		return nil
	}

	var riderEntries []models.RaceEntry
	for _, e := range entries {
		if e.Name == riderName {
			riderEntries = append(riderEntries, e)
		}
	}
	if len(riderEntries) == 0 {
		return nil
	}
	sort.SliceStable(riderEntries, func(i, j int) bool {
		return riderEntries[i].RaceNum < riderEntries[j].RaceNum
	})

	sizes := groupSizes(entries)
	winners := groupWinners(entries)

	summary := &models.RiderSummary{
		Name:  riderName,
		Team:  riderEntries[0].Team,
		Races: make([]models.RiderRace, 0, len(riderEntries)),
	}

	for _, e := range riderEntries {
		if e.Team != summary.Team {
			summary.TeamChanged = true
		}

		k := groupKey{race: e.Race, category: e.RaceCategory}
		total := sizes[k]
		placement := parsePlacement(e.Placement)

		race := models.RiderRace{
			Race:            e.Race,
			RaceNum:         e.RaceNum,
			Category:        e.RaceCategory,
			Team:            e.Team,
			Placement:       placement,
			TotalInCategory: total,
			Time:            e.TotalTime,
			TotalSeconds:    e.TotalSeconds,
		}

		// The rider's own entry is in the cohort, so total is only
		// zero for malformed data; guard the division anyway.
		if total > 0 && placement > 0 {
			race.Percentile = float64(total-placement+1) / float64(total) * 100
			race.IsPodium = placement <= PodiumMaxPlacement
			race.IsTop25 = placement <= top25Threshold(total)
		}

		// Gap stays nil unless both finish times are known. Absence
		// must not read as "tied with the winner".
		if e.TotalSeconds != nil {
			if winner, ok := winners[k]; ok && winner.TotalSeconds != nil {
				gap := *e.TotalSeconds - *winner.TotalSeconds
				race.GapToWinner = &gap
			}
		}

		if race.IsPodium {
			summary.PodiumCount++
		}
		if race.IsTop25 {
			summary.Top25Count++
		}
		summary.Races = append(summary.Races, race)
	}

	summary.TotalRaces = len(summary.Races)
	return summary
}

// RiderNames returns every distinct rider name, alphabetically ordered.
func RiderNames(entries []models.RaceEntry) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, e := range entries {
		if _, ok := seen[e.Name]; ok {
			continue
		}
		seen[e.Name] = struct{}{}
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// FilterRiders narrows the rider directory: case-insensitive substring
// match on the name, plus optional team and category constraints that
// match when any of the rider's entries matches exactly.
func FilterRiders(entries []models.RaceEntry, search, team, category string) []string {
	search = strings.ToLower(search)

	matches := make(map[string]bool)
	for _, e := range entries {
		if team != "" && e.Team != team {
			continue
		}
		if category != "" && e.RaceCategory != category {
			continue
		}
		matches[e.Name] = true
	}

	var names []string
	for _, name := range RiderNames(entries) {
		if !matches[name] {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(name), search) {
			continue
		}
		names = append(names, name)
	}
	return names
}
