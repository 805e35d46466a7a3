package ports

import (
	"context"
	"time"
)

// ConflictChecker validates a candidate booking window against approved
// events. excludeEventID is the event's own id on update, empty on create.
type ConflictChecker interface {
	CheckVenue(ctx context.Context, venueID string, startAt, endAt time.Time, excludeEventID string) error
	CheckArtist(ctx context.Context, performanceID string, startAt, endAt time.Time, excludeEventID string) error
}
