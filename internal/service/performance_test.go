package service

import (
	"context"
	"testing"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPerformanceService_Create_DefaultsActive(t *testing.T) {
	repo := mocks.NewMockPerformanceRepo(t)
	artistRepo := mocks.NewMockArtistRepo(t)

	svc := NewPerformanceService(repo, artistRepo)

	start := time.Now().Add(24 * time.Hour)

	artistRepo.EXPECT().GetByID(mock.Anything, "a1").Return(&domain.ArtistProfile{ID: "a1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	performance, err := svc.Create(context.Background(), domain.PerformanceInput{
		ArtistID:  "a1",
		Name:      "World Tour 2026",
		StartDate: start,
		EndDate:   start.Add(30 * 24 * time.Hour),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, performance.ID)
	assert.True(t, performance.IsActive)
}

func TestPerformanceService_Create_ExplicitInactive(t *testing.T) {
	repo := mocks.NewMockPerformanceRepo(t)
	artistRepo := mocks.NewMockArtistRepo(t)

	svc := NewPerformanceService(repo, artistRepo)

	start := time.Now().Add(24 * time.Hour)
	inactive := false

	artistRepo.EXPECT().GetByID(mock.Anything, "a1").Return(&domain.ArtistProfile{ID: "a1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	performance, err := svc.Create(context.Background(), domain.PerformanceInput{
		ArtistID:  "a1",
		Name:      "Unannounced Tour",
		StartDate: start,
		EndDate:   start.Add(time.Hour),
		IsActive:  &inactive,
	})

	require.NoError(t, err)
	assert.False(t, performance.IsActive)
}

func TestPerformanceService_Create_ArtistNotFound(t *testing.T) {
	repo := mocks.NewMockPerformanceRepo(t)
	artistRepo := mocks.NewMockArtistRepo(t)

	svc := NewPerformanceService(repo, artistRepo)

	start := time.Now().Add(24 * time.Hour)

	artistRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrArtistNotFound)

	_, err := svc.Create(context.Background(), domain.PerformanceInput{
		ArtistID:  "missing",
		Name:      "Tour",
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArtistNotFound)
}

func TestPerformanceService_Create_InvalidDates(t *testing.T) {
	repo := mocks.NewMockPerformanceRepo(t)
	artistRepo := mocks.NewMockArtistRepo(t)

	svc := NewPerformanceService(repo, artistRepo)

	start := time.Now().Add(24 * time.Hour)

	_, err := svc.Create(context.Background(), domain.PerformanceInput{
		ArtistID:  "a1",
		Name:      "Tour",
		StartDate: start,
		EndDate:   start,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPerformanceService_ListByArtist_ChecksArtist(t *testing.T) {
	repo := mocks.NewMockPerformanceRepo(t)
	artistRepo := mocks.NewMockArtistRepo(t)

	svc := NewPerformanceService(repo, artistRepo)

	artistRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrArtistNotFound)

	_, err := svc.ListByArtist(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArtistNotFound)
}

func TestPerformanceService_CreateArtist_Success(t *testing.T) {
	repo := mocks.NewMockPerformanceRepo(t)
	artistRepo := mocks.NewMockArtistRepo(t)

	svc := NewPerformanceService(repo, artistRepo)

	artistRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	artist, err := svc.CreateArtist(context.Background(), "The Headliners", "https://img.example/headliners.jpg")

	require.NoError(t, err)
	assert.NotEmpty(t, artist.ID)
	assert.Equal(t, "The Headliners", artist.ArtistName)
}

func TestPerformanceService_CreateArtist_MissingName(t *testing.T) {
	repo := mocks.NewMockPerformanceRepo(t)
	artistRepo := mocks.NewMockArtistRepo(t)

	svc := NewPerformanceService(repo, artistRepo)

	_, err := svc.CreateArtist(context.Background(), "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
