package repository

import (
	"context"

	"github.com/racelens/racelens/internal/models"
)

// EntryRepository handles race entry data access. The dataset is written
// once at startup and read-only afterwards.
type EntryRepository interface {
	// ReplaceAll swaps the stored dataset for the given entries in one
	// transaction, preserving their order.
	ReplaceAll(ctx context.Context, entries []models.RaceEntry) error
	// List returns entries matching the filter in dataset order.
	List(ctx context.Context, filter models.EntryFilter) ([]models.RaceEntry, error)
	Count(ctx context.Context) (int, error)
	// Categories returns the distinct category labels, alphabetically.
	Categories(ctx context.Context) ([]string, error)
	// Races returns the distinct race labels ordered by race number.
	Races(ctx context.Context) ([]string, error)
}
