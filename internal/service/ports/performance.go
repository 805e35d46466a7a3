package ports

import (
	"context"

	"github.com/itspeasi/etds-project/internal/domain"
)

type ArtistRepo interface {
	Create(ctx context.Context, a *domain.ArtistProfile) error
	GetByID(ctx context.Context, id string) (*domain.ArtistProfile, error)
	List(ctx context.Context) ([]*domain.ArtistProfile, error)
}

type PerformanceRepo interface {
	Create(ctx context.Context, p *domain.Performance) error
	GetByID(ctx context.Context, id string) (*domain.Performance, error)
	List(ctx context.Context) ([]*domain.Performance, error)
	ListByArtist(ctx context.Context, artistID string) ([]*domain.Performance, error)
	Update(ctx context.Context, p *domain.Performance) error
	Delete(ctx context.Context, id string) error
}
