package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/service/ports"
)

type EventService struct {
	repo            ports.EventRepo
	venueRepo       ports.VenueRepo
	performanceRepo ports.PerformanceRepo
	userRepo        ports.UserRepo
	conflicts       ports.ConflictChecker
}

func NewEventService(
	repo ports.EventRepo,
	venueRepo ports.VenueRepo,
	performanceRepo ports.PerformanceRepo,
	userRepo ports.UserRepo,
	conflicts ports.ConflictChecker,
) *EventService {
	return &EventService{
		repo:            repo,
		venueRepo:       venueRepo,
		performanceRepo: performanceRepo,
		userRepo:        userRepo,
		conflicts:       conflicts,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if err := validateEventWindow(input.StartAt, input.EndAt); err != nil {
		return nil, err
	}
	if input.TicketPrice.IsNegative() {
		return nil, fmt.Errorf("%w: ticket_price must not be negative", domain.ErrValidation)
	}

	performance, err := s.performanceRepo.GetByID(ctx, input.PerformanceID)
	if err != nil {
		return nil, fmt.Errorf("check performance: %w", err)
	}
	if !performance.IsActive {
		return nil, fmt.Errorf("%w: performance is not active", domain.ErrValidation)
	}

	if _, err = s.venueRepo.GetByID(ctx, input.VenueID); err != nil {
		return nil, fmt.Errorf("check venue: %w", err)
	}
	if _, err = s.userRepo.GetByID(ctx, input.DistributorID); err != nil {
		return nil, fmt.Errorf("check distributor: %w", err)
	}

	if err = s.checkConflicts(ctx, input.VenueID, input.PerformanceID, input.StartAt, input.EndAt, ""); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:            uuid.New().String(),
		PerformanceID: input.PerformanceID,
		VenueID:       input.VenueID,
		DistributorID: input.DistributorID,
		StartAt:       input.StartAt,
		EndAt:         input.EndAt,
		Status:        domain.EventStatusPending,
		TicketPrice:   input.TicketPrice,
	}

	if err = s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	if err := validateEventWindow(input.StartAt, input.EndAt); err != nil {
		return nil, err
	}
	if input.TicketPrice.IsNegative() {
		return nil, fmt.Errorf("%w: ticket_price must not be negative", domain.ErrValidation)
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err = s.performanceRepo.GetByID(ctx, input.PerformanceID); err != nil {
		return nil, fmt.Errorf("check performance: %w", err)
	}
	if _, err = s.venueRepo.GetByID(ctx, input.VenueID); err != nil {
		return nil, fmt.Errorf("check venue: %w", err)
	}

	// The event's own slot must not block its reschedule
	if err = s.checkConflicts(ctx, input.VenueID, input.PerformanceID, input.StartAt, input.EndAt, id); err != nil {
		return nil, err
	}

	event.PerformanceID = input.PerformanceID
	event.VenueID = input.VenueID
	event.StartAt = input.StartAt
	event.EndAt = input.EndAt
	event.TicketPrice = input.TicketPrice

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

// ChangeStatus moves the event through the approval state machine. The legal
// source statuses are computed from the machine and enforced by the
// repository in one guarded statement.
func (s *EventService) ChangeStatus(ctx context.Context, id string, to domain.EventStatus) (*domain.Event, error) {
	from := domain.TransitionSources(to)
	if len(from) == 0 {
		return nil, fmt.Errorf("%w: %q is not a reachable status", domain.ErrValidation, to)
	}

	return s.repo.UpdateStatus(ctx, id, to, from)
}

func (s *EventService) Cancel(ctx context.Context, id string) (*domain.Event, error) {
	return s.ChangeStatus(ctx, id, domain.EventStatusCanceled)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	return s.repo.GetDetails(ctx, id)
}

func (s *EventService) List(ctx context.Context, distributorID string) ([]*domain.Event, error) {
	return s.repo.List(ctx, distributorID)
}

func (s *EventService) ListUpcoming(ctx context.Context) ([]*domain.EventDetails, error) {
	return s.repo.ListUpcoming(ctx, time.Now().UTC())
}

func (s *EventService) ListByVenue(ctx context.Context, venueID string) ([]*domain.EventDetails, error) {
	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		return nil, fmt.Errorf("check venue: %w", err)
	}

	return s.repo.ListByVenue(ctx, venueID)
}

func (s *EventService) ListForArtist(ctx context.Context, artistID string) ([]*domain.EventDetails, error) {
	return s.repo.ListForArtist(ctx, artistID)
}

func (s *EventService) checkConflicts(ctx context.Context, venueID, performanceID string, startAt, endAt time.Time, excludeEventID string) error {
	if err := s.conflicts.CheckVenue(ctx, venueID, startAt, endAt, excludeEventID); err != nil {
		return err
	}

	return s.conflicts.CheckArtist(ctx, performanceID, startAt, endAt, excludeEventID)
}

func validateEventWindow(startAt, endAt time.Time) error {
	if !startAt.Before(endAt) {
		return fmt.Errorf("%w: start_at must be before end_at", domain.ErrValidation)
	}
	if startAt.Before(time.Now()) {
		return fmt.Errorf("%w: start_at must be in the future", domain.ErrValidation)
	}

	return nil
}
