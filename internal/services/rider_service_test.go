package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/racelens/racelens/internal/errors"
	"github.com/racelens/racelens/internal/models"
	"github.com/racelens/racelens/internal/services"
	"github.com/racelens/racelens/internal/testutil/mocks"
)

func TestRiderService_ListRiders(t *testing.T) {
	repo := new(mocks.MockEntryRepository)
	svc := services.NewRiderService(repo)

	entries := []models.RaceEntry{
		raceEntry("Casey Jones", "X", "Race 1", 1, "JV Boys", "1", nil),
		raceEntry("Avery Smith", "Y", "Race 1", 1, "JV Girls", "1", nil),
	}
	repo.On("List", mock.Anything, models.EntryFilter{}).Return(entries, nil)

	riders, err := svc.ListRiders(context.Background(), "casey", "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Casey Jones"}, riders)
}

func TestRiderService_ListRiders_NarrowsAtRepository(t *testing.T) {
	repo := new(mocks.MockEntryRepository)
	svc := services.NewRiderService(repo)

	entries := []models.RaceEntry{
		raceEntry("Casey Jones", "Y", "Race 1", 1, "JV Boys", "1", nil),
	}
	repo.On("List", mock.Anything, models.EntryFilter{Team: "Y", Category: "JV Boys"}).Return(entries, nil)

	riders, err := svc.ListRiders(context.Background(), "", "Y", "JV Boys")
	require.NoError(t, err)
	assert.Equal(t, []string{"Casey Jones"}, riders)
	repo.AssertExpectations(t)
}

func TestRiderService_RiderSummary(t *testing.T) {
	repo := new(mocks.MockEntryRepository)
	svc := services.NewRiderService(repo)

	entries := []models.RaceEntry{
		raceEntry("A", "X", "Race 1", 1, "Varsity Boys", "1", secsOf(1000)),
		raceEntry("B", "X", "Race 1", 1, "Varsity Boys", "2", secsOf(1050)),
	}
	repo.On("List", mock.Anything, models.EntryFilter{}).Return(entries, nil)

	summary, err := svc.RiderSummary(context.Background(), "B")
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, "B", summary.Name)
	assert.Equal(t, 1, summary.TotalRaces)
}

func TestRiderService_RiderSummary_EmptyNameIsAbsent(t *testing.T) {
	repo := new(mocks.MockEntryRepository)
	svc := services.NewRiderService(repo)

	summary, err := svc.RiderSummary(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, summary, "no selection is absent, not an error")
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestRiderService_RiderSummary_UnknownRider(t *testing.T) {
	repo := new(mocks.MockEntryRepository)
	svc := services.NewRiderService(repo)

	repo.On("List", mock.Anything, models.EntryFilter{}).Return([]models.RaceEntry{}, nil)

	_, err := svc.RiderSummary(context.Background(), "nobody")
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestRiderService_Categories_RepoError(t *testing.T) {
	repo := new(mocks.MockEntryRepository)
	svc := services.NewRiderService(repo)

	repo.On("Categories", mock.Anything).Return(nil, fmt.Errorf("boom"))

	_, err := svc.Categories(context.Background())
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInternal, appErr.Code)
}
