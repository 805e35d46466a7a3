package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/service/ports"
)

type VenueService struct {
	repo ports.VenueRepo
}

func NewVenueService(repo ports.VenueRepo) *VenueService {
	return &VenueService{repo: repo}
}

func (s *VenueService) Create(ctx context.Context, input domain.VenueInput) (*domain.Venue, error) {
	if err := validateVenueInput(input); err != nil {
		return nil, err
	}

	venue := &domain.Venue{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Address:  input.Address,
		City:     input.City,
		State:    input.State,
		Zip:      input.Zip,
		Capacity: input.Capacity,
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	return venue, nil
}

func (s *VenueService) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VenueService) List(ctx context.Context) ([]*domain.Venue, error) {
	return s.repo.List(ctx)
}

func (s *VenueService) Update(ctx context.Context, id string, input domain.VenueInput) (*domain.Venue, error) {
	if err := validateVenueInput(input); err != nil {
		return nil, err
	}

	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	venue.Name = input.Name
	venue.Address = input.Address
	venue.City = input.City
	venue.State = input.State
	venue.Zip = input.Zip
	venue.Capacity = input.Capacity

	if err = s.repo.Update(ctx, venue); err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}

	return venue, nil
}

func (s *VenueService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateVenueInput(input domain.VenueInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	return nil
}
