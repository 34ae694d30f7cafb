package services

import (
	"context"

	"github.com/racelens/racelens/internal/analytics"
	"github.com/racelens/racelens/internal/errors"
	"github.com/racelens/racelens/internal/logger"
	"github.com/racelens/racelens/internal/models"
	"github.com/racelens/racelens/internal/repository"
)

// RiderService handles individual-racer business logic
type RiderService interface {
	// ListRiders returns rider names matching the search and optional
	// team/category constraints, alphabetically ordered.
	ListRiders(ctx context.Context, search, team, category string) ([]string, error)
	// RiderSummary returns the rider's race history. Nil (with no
	// error) when name is empty; a NOT_FOUND error for unknown names.
	RiderSummary(ctx context.Context, name string) (*models.RiderSummary, error)
	// Categories lists the distinct category labels for filters.
	Categories(ctx context.Context) ([]string, error)
}

type riderService struct {
	entryRepo repository.EntryRepository
}

// NewRiderService creates a new RiderService
func NewRiderService(entryRepo repository.EntryRepository) RiderService {
	return &riderService{entryRepo: entryRepo}
}

func (s *riderService) ListRiders(ctx context.Context, search, team, category string) ([]string, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing riders: search=%q, team=%q, category=%q", search, team, category)

	// Team and category narrow at the query; the name search stays in
	// the analytics filter.
	entries, err := s.entryRepo.List(ctx, models.EntryFilter{Team: team, Category: category})
	if err != nil {
		log.Error("failed to list entries: %v", err)
		return nil, errors.NewInternalError(err)
	}

	riders := analytics.FilterRiders(entries, search, team, category)
	log.Debug("found %d riders", len(riders))
	return riders, nil
}

func (s *riderService) RiderSummary(ctx context.Context, name string) (*models.RiderSummary, error) {
	log := logger.FromContext(ctx)
	if name == "" {
		log.Debug("no rider selected")
		return nil, nil
	}
	log.Debug("computing rider summary: name=%q", name)

	// The rider view has no race filter; cohorts and winners come from
	// the full season.
	entries, err := s.entryRepo.List(ctx, models.EntryFilter{})
	if err != nil {
		log.Error("failed to list entries: %v", err)
		return nil, errors.NewInternalError(err)
	}

	summary := analytics.ComputeRiderSummary(entries, name)
	if summary == nil {
		log.Debug("rider not found: %q", name)
		return nil, errors.NewNotFoundError("rider", name)
	}
	return summary, nil
}

func (s *riderService) Categories(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing categories")

	categories, err := s.entryRepo.Categories(ctx)
	if err != nil {
		log.Error("failed to list categories: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return categories, nil
}
