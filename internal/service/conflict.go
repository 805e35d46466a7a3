package service

import (
	"context"
	"fmt"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/monitoring"
	"github.com/itspeasi/etds-project/internal/service/ports"
)

// ConflictService answers "can this window be booked" for the two scheduling
// dimensions: the venue must be free, and the artist behind the performance
// must not be playing anywhere else. Only approved events block a window;
// pending and rejected ones do not hold the slot.
type ConflictService struct {
	eventRepo       ports.EventRepo
	performanceRepo ports.PerformanceRepo
}

func NewConflictService(eventRepo ports.EventRepo, performanceRepo ports.PerformanceRepo) *ConflictService {
	return &ConflictService{
		eventRepo:       eventRepo,
		performanceRepo: performanceRepo,
	}
}

func (s *ConflictService) CheckVenue(ctx context.Context, venueID string, startAt, endAt time.Time, excludeEventID string) error {
	busy, err := s.eventRepo.HasVenueOverlap(ctx, venueID, startAt, endAt, excludeEventID)
	if err != nil {
		return fmt.Errorf("venue overlap check: %w", err)
	}
	if busy {
		monitoring.TrackConflictRejection("venue")
		return domain.ErrVenueConflict
	}

	return nil
}

func (s *ConflictService) CheckArtist(ctx context.Context, performanceID string, startAt, endAt time.Time, excludeEventID string) error {
	performance, err := s.performanceRepo.GetByID(ctx, performanceID)
	if err != nil {
		return fmt.Errorf("resolve performance: %w", err)
	}

	busy, err := s.eventRepo.HasArtistOverlap(ctx, performance.ArtistID, startAt, endAt, excludeEventID)
	if err != nil {
		return fmt.Errorf("artist overlap check: %w", err)
	}
	if busy {
		monitoring.TrackConflictRejection("artist")
		return domain.ErrArtistConflict
	}

	return nil
}
