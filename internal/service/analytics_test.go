package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func topArtistsFixture() []*domain.ArtistSales {
	return []*domain.ArtistSales{
		{
			ArtistID:    "a1",
			ArtistName:  "The Headliners",
			GrossSales:  decimal.RequireFromString("12500.00"),
			TicketsSold: 250,
			FavoriteVenue: domain.VenueRef{
				Name: "The Fillmore", City: "San Francisco", State: "CA",
			},
		},
	}
}

func TestAnalyticsService_TopArtists_CacheHit(t *testing.T) {
	repo := mocks.NewMockAnalyticsRepo(t)
	cache := mocks.NewMockSnapshotCache(t)
	log := newTestLogger(t)

	svc := NewAnalyticsService(repo, cache, 5, time.Minute, log)

	snapshot := topArtistsFixture()
	cache.EXPECT().Get(mock.Anything, "analytics:top-artists", mock.Anything).
		Run(func(ctx context.Context, key string, dest interface{}) {
			*(dest.(*[]*domain.ArtistSales)) = snapshot
		}).
		Return(true, nil)

	got, err := svc.TopArtists(context.Background(), false)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "The Headliners", got[0].ArtistName)
	repo.AssertNotCalled(t, "TopArtists")
}

func TestAnalyticsService_TopArtists_CacheMiss(t *testing.T) {
	repo := mocks.NewMockAnalyticsRepo(t)
	cache := mocks.NewMockSnapshotCache(t)
	log := newTestLogger(t)

	svc := NewAnalyticsService(repo, cache, 5, time.Minute, log)

	snapshot := topArtistsFixture()
	cache.EXPECT().Get(mock.Anything, "analytics:top-artists", mock.Anything).Return(false, nil)
	repo.EXPECT().TopArtists(mock.Anything, 5).Return(snapshot, nil)
	cache.EXPECT().Set(mock.Anything, "analytics:top-artists", snapshot, time.Minute).Return(nil)

	got, err := svc.TopArtists(context.Background(), false)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAnalyticsService_TopArtists_Force(t *testing.T) {
	repo := mocks.NewMockAnalyticsRepo(t)
	cache := mocks.NewMockSnapshotCache(t)
	log := newTestLogger(t)

	svc := NewAnalyticsService(repo, cache, 3, 30*time.Second, log)

	snapshot := topArtistsFixture()
	repo.EXPECT().TopArtists(mock.Anything, 3).Return(snapshot, nil)
	cache.EXPECT().Set(mock.Anything, "analytics:top-artists", snapshot, 30*time.Second).Return(nil)

	got, err := svc.TopArtists(context.Background(), true)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	cache.AssertNotCalled(t, "Get")
}

func TestAnalyticsService_TopArtists_CacheReadFailure(t *testing.T) {
	repo := mocks.NewMockAnalyticsRepo(t)
	cache := mocks.NewMockSnapshotCache(t)
	log := newTestLogger(t)

	svc := NewAnalyticsService(repo, cache, 5, time.Minute, log)

	snapshot := topArtistsFixture()
	cache.EXPECT().Get(mock.Anything, "analytics:top-artists", mock.Anything).Return(false, errors.New("redis down"))
	repo.EXPECT().TopArtists(mock.Anything, 5).Return(snapshot, nil)
	cache.EXPECT().Set(mock.Anything, "analytics:top-artists", snapshot, time.Minute).Return(errors.New("redis down"))

	got, err := svc.TopArtists(context.Background(), false)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAnalyticsService_Refresh_RepoError(t *testing.T) {
	repo := mocks.NewMockAnalyticsRepo(t)
	cache := mocks.NewMockSnapshotCache(t)
	log := newTestLogger(t)

	svc := NewAnalyticsService(repo, cache, 5, time.Minute, log)

	repo.EXPECT().TopArtists(mock.Anything, 5).Return(nil, errors.New("db error"))

	_, err := svc.Refresh(context.Background())

	require.Error(t, err)
}
