package ports

import (
	"context"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context, distributorID string) ([]*domain.Event, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]*domain.EventDetails, error)
	ListByVenue(ctx context.Context, venueID string) ([]*domain.EventDetails, error)
	ListForArtist(ctx context.Context, artistID string) ([]*domain.EventDetails, error)
	Update(ctx context.Context, e *domain.Event) error
	// UpdateStatus moves the event to the given status, guarded by the set
	// of statuses the transition is legal from. Returns
	// domain.ErrEventNotFound or domain.ErrInvalidStateChange when no row
	// was changed.
	UpdateStatus(ctx context.Context, id string, to domain.EventStatus, from []domain.EventStatus) (*domain.Event, error)
	// Delete removes the event only while it is still pending.
	Delete(ctx context.Context, id string) error
	// HasVenueOverlap reports whether any approved event at the venue
	// overlaps [startAt, endAt), excluding excludeID when non-empty.
	HasVenueOverlap(ctx context.Context, venueID string, startAt, endAt time.Time, excludeID string) (bool, error)
	// HasArtistOverlap is the same check across every performance that
	// belongs to the artist.
	HasArtistOverlap(ctx context.Context, artistID string, startAt, endAt time.Time, excludeID string) (bool, error)
}
