package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/racelens/racelens/internal/models"
)

// MockEntryRepository is a mock implementation of repository.EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) ReplaceAll(ctx context.Context, entries []models.RaceEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) List(ctx context.Context, filter models.EntryFilter) ([]models.RaceEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RaceEntry), args.Error(1)
}

func (m *MockEntryRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockEntryRepository) Races(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
