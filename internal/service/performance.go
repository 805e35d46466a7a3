package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/service/ports"
)

type PerformanceService struct {
	repo       ports.PerformanceRepo
	artistRepo ports.ArtistRepo
}

func NewPerformanceService(repo ports.PerformanceRepo, artistRepo ports.ArtistRepo) *PerformanceService {
	return &PerformanceService{
		repo:       repo,
		artistRepo: artistRepo,
	}
}

func (s *PerformanceService) Create(ctx context.Context, input domain.PerformanceInput) (*domain.Performance, error) {
	if err := validatePerformanceInput(input); err != nil {
		return nil, err
	}

	if _, err := s.artistRepo.GetByID(ctx, input.ArtistID); err != nil {
		return nil, fmt.Errorf("check artist: %w", err)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	performance := &domain.Performance{
		ID:        uuid.New().String(),
		ArtistID:  input.ArtistID,
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		IsActive:  isActive,
	}

	if err := s.repo.Create(ctx, performance); err != nil {
		return nil, fmt.Errorf("create performance: %w", err)
	}

	return performance, nil
}

func (s *PerformanceService) GetByID(ctx context.Context, id string) (*domain.Performance, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PerformanceService) List(ctx context.Context) ([]*domain.Performance, error) {
	return s.repo.List(ctx)
}

func (s *PerformanceService) ListByArtist(ctx context.Context, artistID string) ([]*domain.Performance, error) {
	if _, err := s.artistRepo.GetByID(ctx, artistID); err != nil {
		return nil, fmt.Errorf("check artist: %w", err)
	}

	return s.repo.ListByArtist(ctx, artistID)
}

func (s *PerformanceService) Update(ctx context.Context, id string, input domain.PerformanceInput) (*domain.Performance, error) {
	if err := validatePerformanceInput(input); err != nil {
		return nil, err
	}

	performance, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	performance.Name = input.Name
	performance.StartDate = input.StartDate
	performance.EndDate = input.EndDate
	if input.IsActive != nil {
		performance.IsActive = *input.IsActive
	}

	if err = s.repo.Update(ctx, performance); err != nil {
		return nil, fmt.Errorf("update performance: %w", err)
	}

	return performance, nil
}

func (s *PerformanceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *PerformanceService) CreateArtist(ctx context.Context, name, imageURL string) (*domain.ArtistProfile, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: artist_name is required", domain.ErrValidation)
	}

	artist := &domain.ArtistProfile{
		ID:         uuid.New().String(),
		ArtistName: name,
		ImageURL:   imageURL,
	}

	if err := s.artistRepo.Create(ctx, artist); err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}

	return artist, nil
}

func (s *PerformanceService) GetArtist(ctx context.Context, id string) (*domain.ArtistProfile, error) {
	return s.artistRepo.GetByID(ctx, id)
}

func (s *PerformanceService) ListArtists(ctx context.Context) ([]*domain.ArtistProfile, error) {
	return s.artistRepo.List(ctx)
}

func validatePerformanceInput(input domain.PerformanceInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !input.StartDate.Before(input.EndDate) {
		return fmt.Errorf("%w: start_date must be before end_date", domain.ErrValidation)
	}

	return nil
}
