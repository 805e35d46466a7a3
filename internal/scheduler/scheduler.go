package scheduler

import (
	"context"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type snapshotRefresher interface {
	Refresh(ctx context.Context) ([]*domain.ArtistSales, error)
}

// Scheduler keeps the analytics snapshot warm so API reads rarely pay for
// the aggregation.
type Scheduler struct {
	analytics snapshotRefresher
	interval  time.Duration
	logger    logger.Logger
}

func New(
	analytics snapshotRefresher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		analytics: analytics,
		interval:  interval,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sales, err := s.analytics.Refresh(ctx)
	if err != nil {
		s.logger.Error("failed to refresh analytics snapshot",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("analytics snapshot refreshed",
		logger.Int("artists", len(sales)),
	)
}
