package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/racelens/racelens/internal/analytics"
	"github.com/racelens/racelens/internal/models"
)

func secs(v float64) *float64 {
	return &v
}

func entry(name, team, race string, raceNum int, category, placement string, totalSeconds *float64) models.RaceEntry {
	return models.RaceEntry{
		Name:         name,
		Team:         team,
		Race:         race,
		RaceNum:      raceNum,
		RaceCategory: category,
		Placement:    placement,
		TotalSeconds: totalSeconds,
	}
}

func TestComputeTeamMetrics_BasicScenario(t *testing.T) {
	entries := []models.RaceEntry{
		entry("A", "X", "Race 1", 1, "Varsity Boys", "1", secs(1000)),
		entry("B", "X", "Race 1", 1, "Varsity Boys", "2", secs(1050)),
	}

	metrics := analytics.ComputeTeamMetrics(entries, "all", []string{"X"})
	m, ok := metrics["X"]
	require.True(t, ok)

	assert.Equal(t, 2, m.TotalRacers)
	assert.Equal(t, 2, m.PodiumCount)
	// cohort of 2: ceil(2*0.25)=1, only placement 1 qualifies
	assert.Equal(t, 1, m.Top25Count)
	assert.Equal(t, 2, m.TotalRaces)
	require.NotNil(t, m.AvgGapToWinner)
	assert.InDelta(t, 50, *m.AvgGapToWinner, 0.0001)
	assert.Equal(t, map[string]int{"Varsity Boys": 2}, m.CategoryDistribution)
}

func TestComputeTeamMetrics_OnlySelectedTeams(t *testing.T) {
	entries := []models.RaceEntry{
		entry("A", "X", "Race 1", 1, "Varsity Boys", "1", secs(1000)),
		entry("C", "Y", "Race 1", 1, "Varsity Boys", "2", secs(1100)),
	}

	metrics := analytics.ComputeTeamMetrics(entries, "all", []string{"X"})
	assert.Contains(t, metrics, "X")
	assert.NotContains(t, metrics, "Y")
}

func TestComputeTeamMetrics_RaceFilterUsesFilteredCohorts(t *testing.T) {
	// Race 1 has a 4-rider field, Race 2 a 2-rider field. With the
	// filter on Race 2, the top-25% threshold must come from the
	// 2-rider cohort and D's Race 1 win must not count.
	entries := []models.RaceEntry{
		entry("A", "X", "Race 1 - Snowbasin", 1, "JV Boys", "1", secs(900)),
		entry("B", "X", "Race 1 - Snowbasin", 1, "JV Boys", "2", secs(950)),
		entry("C", "Y", "Race 1 - Snowbasin", 1, "JV Boys", "3", secs(960)),
		entry("D", "Y", "Race 1 - Snowbasin", 1, "JV Boys", "4", secs(990)),
		entry("A", "X", "Race 2 - Manti", 2, "JV Boys", "2", secs(1010)),
		entry("D", "Y", "Race 2 - Manti", 2, "JV Boys", "1", secs(1000)),
	}

	all := analytics.ComputeTeamMetrics(entries, "all", []string{"X", "Y"})
	raceTwo := analytics.ComputeTeamMetrics(entries, "Race 2", []string{"X", "Y"})

	assert.Equal(t, 3, all["X"].TotalRaces)
	assert.Equal(t, 1, raceTwo["X"].TotalRaces)
	assert.Equal(t, 1, raceTwo["Y"].TotalRaces)

	// Filtered cohort is 2 entries, threshold ceil(2*0.25)=1: only the
	// Race 2 winner qualifies.
	assert.Equal(t, 1, raceTwo["Y"].Top25Count)
	assert.Equal(t, 0, raceTwo["X"].Top25Count)

	// Gap for X's lone Race 2 entry is against the Race 2 winner.
	require.NotNil(t, raceTwo["X"].AvgGapToWinner)
	assert.InDelta(t, 10, *raceTwo["X"].AvgGapToWinner, 0.0001)
}

func TestComputeTeamMetrics_FilterNeverIncreasesTotals(t *testing.T) {
	entries := []models.RaceEntry{
		entry("A", "X", "Race 1", 1, "JV Boys", "1", secs(900)),
		entry("A", "X", "Race 2", 2, "JV Boys", "1", secs(880)),
		entry("B", "X", "Race 2", 2, "JV Boys", "2", secs(920)),
	}

	all := analytics.ComputeTeamMetrics(entries, "all", []string{"X"})
	for _, label := range []string{"Race 1", "Race 2"} {
		filtered := analytics.ComputeTeamMetrics(entries, label, []string{"X"})
		assert.LessOrEqual(t, filtered["X"].TotalRaces, all["X"].TotalRaces)
	}
}

func TestComputeTeamMetrics_GapSkipsMissingTiming(t *testing.T) {
	entries := []models.RaceEntry{
		entry("A", "X", "Race 1", 1, "Varsity Boys", "1", secs(1000)),
		entry("B", "X", "Race 1", 1, "Varsity Boys", "2", nil), // DNF, no time
		entry("C", "X", "Race 1", 1, "Varsity Girls", "1", nil),
		entry("D", "X", "Race 1", 1, "Varsity Girls", "2", secs(1200)), // winner untimed
	}

	m := analytics.ComputeTeamMetrics(entries, "all", []string{"X"})["X"]
	// No entry has timing on both sides, so the average is absent,
	// not zero.
	assert.Nil(t, m.AvgGapToWinner)
}

func TestComputeTeamMetrics_GenderBalance(t *testing.T) {
	entries := []models.RaceEntry{
		entry("A", "X", "Race 1", 1, "Varsity Girls", "1", secs(1000)),
		entry("B", "X", "Race 1", 1, "Varsity Boys", "1", secs(950)),
		entry("C", "X", "Race 1", 1, "Varsity Boys", "2", secs(980)),
		entry("D", "X", "Race 1", 1, "Adaptive", "1", secs(990)), // unclassified, excluded
	}

	m := analytics.ComputeTeamMetrics(entries, "all", []string{"X"})["X"]
	require.NotNil(t, m.GenderBalance)
	assert.InDelta(t, 100.0/3.0, *m.GenderBalance, 0.0001)
}

func TestComputeTeamMetrics_GenderBalanceUndefinedWithoutLabels(t *testing.T) {
	entries := []models.RaceEntry{
		entry("A", "X", "Race 1", 1, "Adaptive", "1", secs(1000)),
	}

	m := analytics.ComputeTeamMetrics(entries, "all", []string{"X"})["X"]
	assert.Nil(t, m.GenderBalance, "no recognizable labels means excluded, not zero")
}

func TestComputeTeamMetrics_EmptySelection(t *testing.T) {
	entries := []models.RaceEntry{
		entry("A", "X", "Race 1", 1, "Varsity Boys", "1", secs(1000)),
	}

	metrics := analytics.ComputeTeamMetrics(entries, "all", nil)
	assert.Empty(t, metrics)
}

func TestSelectableTeams_ThresholdAndOrder(t *testing.T) {
	var entries []models.RaceEntry
	// 25 entries for X, 22 for Y, 5 for Z (below the >20 cutoff)
	for i := 0; i < 25; i++ {
		entries = append(entries, entry("x", "X", "Race 1", 1, "JV Boys", "10", nil))
	}
	for i := 0; i < 22; i++ {
		entries = append(entries, entry("y", "Y", "Race 1", 1, "JV Boys", "11", nil))
	}
	for i := 0; i < 5; i++ {
		entries = append(entries, entry("z", "Z", "Race 1", 1, "JV Boys", "12", nil))
	}

	teams := analytics.SelectableTeams(entries, 20)
	require.Len(t, teams, 2)
	assert.Equal(t, "X", teams[0].Team)
	assert.Equal(t, 25, teams[0].Count)
	assert.Equal(t, "Y", teams[1].Team)
}

func TestSelectableTeams_ExactlyAtThresholdExcluded(t *testing.T) {
	var entries []models.RaceEntry
	for i := 0; i < 20; i++ {
		entries = append(entries, entry("y", "Y", "Race 1", 1, "JV Boys", "9", nil))
	}

	teams := analytics.SelectableTeams(entries, 20)
	assert.Empty(t, teams, "count must be strictly greater than the threshold")
}

func TestSelectableTeams_TiesKeepFirstSeenOrder(t *testing.T) {
	var entries []models.RaceEntry
	for i := 0; i < 21; i++ {
		entries = append(entries, entry("b", "Bravo", "Race 1", 1, "JV Boys", "8", nil))
		entries = append(entries, entry("a", "Alpha", "Race 1", 1, "JV Boys", "7", nil))
	}

	teams := analytics.SelectableTeams(entries, 20)
	require.Len(t, teams, 2)
	assert.Equal(t, "Bravo", teams[0].Team, "tie broken by first appearance, not name")
}

func TestFilterByRace_SubstringContainment(t *testing.T) {
	entries := []models.RaceEntry{
		entry("A", "X", "Race 1 - Snowbasin", 1, "JV Boys", "1", nil),
		entry("A", "X", "Race 2 - Manti", 2, "JV Boys", "2", nil),
	}

	assert.Len(t, analytics.FilterByRace(entries, "all"), 2)
	assert.Len(t, analytics.FilterByRace(entries, ""), 2)

	manti := analytics.FilterByRace(entries, "Race 2")
	require.Len(t, manti, 1)
	assert.Equal(t, "Race 2 - Manti", manti[0].Race)
}
