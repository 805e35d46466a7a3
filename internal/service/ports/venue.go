package ports

import (
	"context"

	"github.com/itspeasi/etds-project/internal/domain"
)

type VenueRepo interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
	Update(ctx context.Context, v *domain.Venue) error
	Delete(ctx context.Context, id string) error
}
