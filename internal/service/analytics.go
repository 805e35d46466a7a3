package service

import (
	"context"
	"fmt"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const topArtistsKey = "analytics:top-artists"

// AnalyticsService serves the top-artists report from a short-lived cached
// snapshot. Readers get the snapshot while it is fresh; a miss, an explicit
// refresh, or the scheduler recomputes it from the database.
type AnalyticsService struct {
	repo     ports.AnalyticsRepo
	cache    ports.SnapshotCache
	topLimit int
	ttl      time.Duration
	logger   logger.Logger
}

func NewAnalyticsService(
	repo ports.AnalyticsRepo,
	cache ports.SnapshotCache,
	topLimit int,
	ttl time.Duration,
	logger logger.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		repo:     repo,
		cache:    cache,
		topLimit: topLimit,
		ttl:      ttl,
		logger:   logger,
	}
}

func (s *AnalyticsService) TopArtists(ctx context.Context, force bool) ([]*domain.ArtistSales, error) {
	if !force {
		var cached []*domain.ArtistSales
		hit, err := s.cache.Get(ctx, topArtistsKey, &cached)
		if err != nil {
			// serve from the database if the cache is unhealthy
			s.logger.Error("snapshot cache read failed",
				logger.String("error", err.Error()),
			)
		}
		if hit {
			return cached, nil
		}
	}

	return s.Refresh(ctx)
}

// Refresh recomputes the snapshot and stores it with the configured TTL.
func (s *AnalyticsService) Refresh(ctx context.Context) ([]*domain.ArtistSales, error) {
	res, err := s.repo.TopArtists(ctx, s.topLimit)
	if err != nil {
		return nil, fmt.Errorf("compute top artists: %w", err)
	}

	if err = s.cache.Set(ctx, topArtistsKey, res, s.ttl); err != nil {
		s.logger.Error("snapshot cache write failed",
			logger.String("error", err.Error()),
		)
	}

	return res, nil
}
