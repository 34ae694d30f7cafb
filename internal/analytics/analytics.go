// Package analytics holds the pure aggregation core. Every function is a
// plain function of its inputs: callers pass the dataset plus the current
// filter/selection state and get a fresh result back. Nothing in here
// touches storage, holds state, or mutates its arguments.
package analytics

import (
	"math"
	"strconv"
	"strings"

	"github.com/racelens/racelens/internal/models"
)

// PodiumMaxPlacement is the worst placement that still counts as a podium
// finish (1st through 5th).
const PodiumMaxPlacement = 5

// RaceFilterAll selects every race.
const RaceFilterAll = "all"

// FilterByRace returns the entries whose race label contains raceFilter.
// "all" (or empty) returns the input unchanged. Substring containment is
// deliberate: a filter of "Race 2" must match venue-suffixed labels like
// "Race 2 - Manti".
func FilterByRace(entries []models.RaceEntry, raceFilter string) []models.RaceEntry {
	if raceFilter == "" || raceFilter == RaceFilterAll {
		return entries
	}
	filtered := make([]models.RaceEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(e.Race, raceFilter) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// parsePlacement converts the string-encoded finishing position. Returns 0
// for anything that is not a positive integer (DNF markers and the like),
// which no threshold check treats as a qualifying placement.
func parsePlacement(s string) int {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || p < 1 {
		return 0
	}
	return p
}

// top25Threshold is the ceiling-rounded quarter-mark of a cohort. A
// placement at or above it counts as a top-25% finish.
func top25Threshold(cohortSize int) int {
	return int(math.Ceil(float64(cohortSize) * 0.25))
}

type groupKey struct {
	race     string
	category string
}

// groupWinners indexes each (race, category) group's winner, the entry
// with placement "1". Expected-data invariant: at most one per group; if
// the data violates it the first one seen wins.
func groupWinners(entries []models.RaceEntry) map[groupKey]models.RaceEntry {
	winners := make(map[groupKey]models.RaceEntry)
	for _, e := range entries {
		if parsePlacement(e.Placement) != 1 {
			continue
		}
		k := groupKey{race: e.Race, category: e.RaceCategory}
		if _, ok := winners[k]; !ok {
			winners[k] = e
		}
	}
	return winners
}

// groupSizes counts entries per (race, category) group.
func groupSizes(entries []models.RaceEntry) map[groupKey]int {
	sizes := make(map[groupKey]int)
	for _, e := range entries {
		sizes[groupKey{race: e.Race, category: e.RaceCategory}]++
	}
	return sizes
}

// categorySizes counts entries per category across all races in entries.
// This is the cohort the team view ranks top-25% finishes against.
func categorySizes(entries []models.RaceEntry) map[string]int {
	sizes := make(map[string]int)
	for _, e := range entries {
		sizes[e.RaceCategory]++
	}
	return sizes
}
