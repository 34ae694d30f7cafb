package services

import (
	"context"

	"github.com/racelens/racelens/internal/errors"
	"github.com/racelens/racelens/internal/loader"
	"github.com/racelens/racelens/internal/logger"
	"github.com/racelens/racelens/internal/models"
	"github.com/racelens/racelens/internal/repository"
)

// DatasetService handles the one-shot startup load of the season dataset.
type DatasetService interface {
	// Load fetches, normalizes, and stores the dataset. A failure is
	// caught at this boundary: the service logs it and reports a
	// failed status over an empty dataset instead of propagating.
	Load(ctx context.Context, source, seasonLabel string) models.DatasetStatus
	// Count reports the number of stored entries, for health checks.
	Count(ctx context.Context) (int, error)
}

type datasetService struct {
	entryRepo repository.EntryRepository
}

// NewDatasetService creates a new DatasetService
func NewDatasetService(entryRepo repository.EntryRepository) DatasetService {
	return &datasetService{entryRepo: entryRepo}
}

func (s *datasetService) Load(ctx context.Context, source, seasonLabel string) models.DatasetStatus {
	log := logger.FromContext(ctx)
	log.Info("loading season dataset from %s", source)

	status := models.DatasetStatus{Season: seasonLabel}

	entries, err := loader.Load(ctx, source)
	if err != nil {
		log.Error("dataset load failed, serving empty dataset: %v", err)
		status.Loaded = true
		status.Failed = true
		return status
	}

	if err := s.entryRepo.ReplaceAll(ctx, entries); err != nil {
		log.Error("failed to store dataset, serving empty dataset: %v", err)
		status.Loaded = true
		status.Failed = true
		return status
	}

	status.Loaded = true
	status.Entries = len(entries)
	log.Info("dataset ready: %d entries", status.Entries)
	return status
}

func (s *datasetService) Count(ctx context.Context) (int, error) {
	count, err := s.entryRepo.Count(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to count entries: %v", err)
		return 0, errors.NewInternalError(err)
	}
	return count, nil
}
