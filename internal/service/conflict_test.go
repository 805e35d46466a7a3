package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConflictService_CheckVenue_Free(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	performanceRepo := mocks.NewMockPerformanceRepo(t)

	svc := NewConflictService(eventRepo, performanceRepo)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(3 * time.Hour)

	eventRepo.EXPECT().HasVenueOverlap(mock.Anything, "v1", start, end, "").Return(false, nil)

	err := svc.CheckVenue(context.Background(), "v1", start, end, "")

	require.NoError(t, err)
}

func TestConflictService_CheckVenue_Busy(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	performanceRepo := mocks.NewMockPerformanceRepo(t)

	svc := NewConflictService(eventRepo, performanceRepo)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(3 * time.Hour)

	eventRepo.EXPECT().HasVenueOverlap(mock.Anything, "v1", start, end, "").Return(true, nil)

	err := svc.CheckVenue(context.Background(), "v1", start, end, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueConflict)
}

func TestConflictService_CheckVenue_RepoError(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	performanceRepo := mocks.NewMockPerformanceRepo(t)

	svc := NewConflictService(eventRepo, performanceRepo)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(3 * time.Hour)

	eventRepo.EXPECT().HasVenueOverlap(mock.Anything, "v1", start, end, "").Return(false, errors.New("db error"))

	err := svc.CheckVenue(context.Background(), "v1", start, end, "")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrVenueConflict)
}

func TestConflictService_CheckArtist_Free(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	performanceRepo := mocks.NewMockPerformanceRepo(t)

	svc := NewConflictService(eventRepo, performanceRepo)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(3 * time.Hour)

	performanceRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Performance{ID: "p1", ArtistID: "a1"}, nil)
	eventRepo.EXPECT().HasArtistOverlap(mock.Anything, "a1", start, end, "").Return(false, nil)

	err := svc.CheckArtist(context.Background(), "p1", start, end, "")

	require.NoError(t, err)
}

func TestConflictService_CheckArtist_Busy(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	performanceRepo := mocks.NewMockPerformanceRepo(t)

	svc := NewConflictService(eventRepo, performanceRepo)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(3 * time.Hour)

	performanceRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Performance{ID: "p1", ArtistID: "a1"}, nil)
	eventRepo.EXPECT().HasArtistOverlap(mock.Anything, "a1", start, end, "e9").Return(true, nil)

	err := svc.CheckArtist(context.Background(), "p1", start, end, "e9")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArtistConflict)
}

func TestConflictService_CheckArtist_PerformanceNotFound(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	performanceRepo := mocks.NewMockPerformanceRepo(t)

	svc := NewConflictService(eventRepo, performanceRepo)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(3 * time.Hour)

	performanceRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrPerformanceNotFound)

	err := svc.CheckArtist(context.Background(), "missing", start, end, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPerformanceNotFound)
}
