package services

import (
	"context"

	"github.com/racelens/racelens/internal/analytics"
	"github.com/racelens/racelens/internal/errors"
	"github.com/racelens/racelens/internal/logger"
	"github.com/racelens/racelens/internal/models"
	"github.com/racelens/racelens/internal/repository"
)

// TeamService handles team-comparison business logic
type TeamService interface {
	// SelectableTeams lists teams eligible for comparison, computed
	// over the full season regardless of the current race filter.
	SelectableTeams(ctx context.Context) ([]models.TeamCount, error)
	// CompareTeams computes per-team metrics and the category funnel
	// for the selected teams under the given race filter.
	CompareTeams(ctx context.Context, raceFilter string, selectedTeams []string) (map[string]models.TeamMetrics, []models.FunnelRow, error)
	// Races lists the distinct race labels for the filter dropdown.
	Races(ctx context.Context) ([]string, error)
}

type teamService struct {
	entryRepo      repository.EntryRepository
	minTeamEntries int
	categoryOrder  []string
}

// NewTeamService creates a new TeamService
func NewTeamService(entryRepo repository.EntryRepository, minTeamEntries int, categoryOrder []string) TeamService {
	return &teamService{
		entryRepo:      entryRepo,
		minTeamEntries: minTeamEntries,
		categoryOrder:  categoryOrder,
	}
}

func (s *teamService) SelectableTeams(ctx context.Context) ([]models.TeamCount, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing selectable teams: min_entries=%d", s.minTeamEntries)

	entries, err := s.entryRepo.List(ctx, models.EntryFilter{})
	if err != nil {
		log.Error("failed to list entries: %v", err)
		return nil, errors.NewInternalError(err)
	}

	teams := analytics.SelectableTeams(entries, s.minTeamEntries)
	log.Debug("found %d selectable teams", len(teams))
	return teams, nil
}

func (s *teamService) CompareTeams(ctx context.Context, raceFilter string, selectedTeams []string) (map[string]models.TeamMetrics, []models.FunnelRow, error) {
	log := logger.FromContext(ctx)
	log.Debug("comparing teams: race_filter=%q, teams=%d", raceFilter, len(selectedTeams))

	// Race filtering happens in the repository query; cohort sizes and
	// winners are then derived from exactly the rows that came back.
	filtered, err := s.entryRepo.List(ctx, models.EntryFilter{Race: raceFilter})
	if err != nil {
		log.Error("failed to list filtered entries: %v", err)
		return nil, nil, errors.NewInternalError(err)
	}

	metrics := analytics.ComputeTeamMetrics(filtered, analytics.RaceFilterAll, selectedTeams)
	funnel := analytics.BuildFunnel(selectedTeams, metrics, s.categoryOrder)
	return metrics, funnel, nil
}

func (s *teamService) Races(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing races")

	races, err := s.entryRepo.Races(ctx)
	if err != nil {
		log.Error("failed to list races: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return races, nil
}
